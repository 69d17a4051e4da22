package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saintserge/jodconverter/internal/auth"
	"github.com/saintserge/jodconverter/internal/observability"
	"github.com/saintserge/jodconverter/internal/officeurl"
)

// DescriptorView is the JSON shape of one descriptor.
type DescriptorView struct {
	URL                     string            `json:"url"`
	ConnectionType          string            `json:"connection_type"`
	ConnectionParameters    map[string]string `json:"connection_parameters"`
	ConnectionParametersRaw string            `json:"connection_parameters_raw"`
	ConnectionSegment       string            `json:"connection_segment"`
	Protocol                string            `json:"protocol"`
	ProtocolParameters      map[string]string `json:"protocol_parameters"`
	ProtocolParametersRaw   string            `json:"protocol_parameters_raw"`
	ProtocolSegment         string            `json:"protocol_segment"`
	ObjectID                string            `json:"object_id"`
	Network                 string            `json:"network"`
	Address                 string            `json:"address"`
}

func NewDescriptorView(d officeurl.Descriptor) DescriptorView {
	view := DescriptorView{
		URL:                     d.String(),
		ConnectionType:          d.ConnectionType(),
		ConnectionParameters:    d.ConnectionParameters(),
		ConnectionParametersRaw: d.ConnectionParametersRaw(),
		ConnectionSegment:       d.ConnectionSegmentRaw(),
		Protocol:                d.Protocol(),
		ProtocolParameters:      d.ProtocolParameters(),
		ProtocolParametersRaw:   d.ProtocolParametersRaw(),
		ProtocolSegment:         d.ProtocolSegmentRaw(),
		ObjectID:                d.ObjectID(),
	}
	if addr := d.Addr(); addr != nil {
		view.Network = addr.Network()
		view.Address = addr.String()
	}
	return view
}

type parseRequest struct {
	URL string `json:"url" binding:"required"`
}

type pipeRequest struct {
	Name string `json:"name"`
}

type socketRequest struct {
	Host string `json:"host"`
	Port *int   `json:"port" binding:"required"`
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  s.appeared,
			"service": serviceName,
			"version": serviceVersion,
		})
	})
	s.router.GET("/metrics", s.metricsHandler())

	v1 := s.router.Group("/v1/descriptors")
	if s.cfg.AuthToken != "" {
		v1.Use(auth.Require(auth.StaticToken{Token: s.cfg.AuthToken}))
	}
	v1.GET("", func(c *gin.Context) {
		raw, ok := c.GetQuery("url")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter required"})
			return
		}
		d, err := officeurl.Parse(raw)
		s.respond(c, "parse", d, err)
	})
	v1.POST("", func(c *gin.Context) {
		var req parseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		d, err := officeurl.Parse(req.URL)
		s.respond(c, "parse", d, err)
	})
	v1.POST("/pipe", func(c *gin.Context) {
		var req pipeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		d, err := officeurl.ForPipe(req.Name)
		s.respond(c, "pipe", d, err)
	})
	v1.POST("/socket", func(c *gin.Context) {
		var req socketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		d, err := officeurl.ForSocket(req.Host, *req.Port)
		s.respond(c, "socket", d, err)
	})
	v1.GET("/default", func(c *gin.Context) {
		if s.cfg.Default.IsZero() {
			c.JSON(http.StatusNotFound, gin.H{"error": "no default descriptor configured"})
			return
		}
		c.JSON(http.StatusOK, NewDescriptorView(s.cfg.Default))
	})
}

func (s *Server) respond(c *gin.Context, source string, d officeurl.Descriptor, err error) {
	observability.RecordDescriptor(s.cfg.Node, source, d.ConnectionType(), err == nil)
	if err != nil {
		var invalid *officeurl.InvalidDescriptorError
		if errors.As(err, &invalid) {
			s.logger.Warn().Str("source", source).Str("raw", invalid.Raw).Err(invalid.Err).Msg("descriptor rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Err.Error(), "raw": invalid.Raw})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, NewDescriptorView(d))
}
