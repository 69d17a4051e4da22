package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saintserge/jodconverter/internal/officeurl"
	"github.com/saintserge/jodconverter/internal/testutil/testlog"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "office.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOfficeConfigSocket(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
[office]
host = "10.1.2.3"
port = 8100
`)
	cfg, err := LoadOfficeConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	d, err := cfg.Descriptor()
	if err != nil {
		t.Fatalf("descriptor: %v", err)
	}
	want := "socket,host=10.1.2.3,port=8100,tcpNoDelay=1;urp;StarOffice.ServiceManager"
	if d.String() != want {
		t.Fatalf("unexpected descriptor: %q", d)
	}
}

func TestLoadOfficeConfigPipe(t *testing.T) {
	testlog.Start(t)
	cfg, err := LoadOfficeConfig(writeConfig(t, "[office]\npipe_name = \"office\"\n"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	d, err := cfg.Descriptor()
	if err != nil {
		t.Fatalf("descriptor: %v", err)
	}
	if !d.IsPipe() || d.PipeName() != "office" {
		t.Fatalf("unexpected descriptor: %q", d)
	}
}

func TestLoadOfficeConfigURL(t *testing.T) {
	testlog.Start(t)
	cfg, err := LoadOfficeConfig(writeConfig(t, `
[office]
url = "socket,port=2003;urp,negotiate=0;StarOffice.ComponentContext"
`))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	d, err := cfg.Descriptor()
	if err != nil {
		t.Fatalf("descriptor: %v", err)
	}
	if d.Port() != 2003 || d.ObjectID() != "StarOffice.ComponentContext" {
		t.Fatalf("unexpected descriptor: %q", d)
	}
}

func TestLoadOfficeConfigDefaultsPort(t *testing.T) {
	testlog.Start(t)
	cfg, err := LoadOfficeConfig(writeConfig(t, "[office]\n"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != DefaultOfficePort {
		t.Fatalf("unexpected port: %d", cfg.Port)
	}
}

func TestLoadOfficeConfigRejects(t *testing.T) {
	testlog.Start(t)
	cases := []string{
		"[office]\npipe_name = \"office\"\nport = 2002\n",
		"[office]\nhost = \"10.0.0.1\"\npipe_name = \"office\"\n",
		"[office]\nurl = \"bogus,foo=1;urp;X\"\n",
		"[office]\nport = 70000\n",
		"[office\n",
	}
	for _, content := range cases {
		if _, err := LoadOfficeConfig(writeConfig(t, content)); err == nil {
			t.Fatalf("expected error for %q", content)
		}
	}
}

func TestOfficeConfigDescriptorHostRequiresPort(t *testing.T) {
	_, err := OfficeConfig{Host: "10.0.0.1", URL: "pipe,name=a;urp;X"}.Descriptor()
	if err == nil {
		t.Fatalf("expected host without port rejected")
	}
}

func TestOfficeConfigDescriptorKeepsInvalidDescriptorError(t *testing.T) {
	_, err := OfficeConfig{URL: "pipe;urp;X"}.Descriptor()
	if _, ok := err.(*officeurl.InvalidDescriptorError); !ok {
		t.Fatalf("expected InvalidDescriptorError, got %T", err)
	}
}

func TestWriteTemplateAndLoad(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "office.toml")
	if err := WriteTemplate(path, "office", false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if err := WriteTemplate(path, "office", false); err == nil {
		t.Fatalf("expected existing config error")
	}
	if err := WriteTemplate(path, "office", true); err != nil {
		t.Fatalf("overwrite template: %v", err)
	}
	cfg, err := LoadOfficeConfig(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if cfg.Host != "127.0.0.1" || cfg.Port != 2002 {
		t.Fatalf("unexpected template config: %+v", cfg)
	}
	if _, err := Template("printer"); err == nil {
		t.Fatalf("expected unknown kind error")
	}
}
