package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "office":
		return officeTemplate, nil
	case "server":
		return serverTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const officeTemplate = `# Exactly one of url, pipe_name or port.
[office]
host = "127.0.0.1"
port = 2002
# pipe_name = "office"
# url = "socket,host=127.0.0.1,port=2002,tcpNoDelay=1;urp;StarOffice.ServiceManager"
`

const serverTemplate = `node = "officeurld"
listen_addr = "127.0.0.1:9200"
cors_origins = ["http://localhost:3000"]
# auth_token = "change-me"
default = "socket,host=127.0.0.1,port=2002,tcpNoDelay=1;urp;StarOffice.ServiceManager"
`
