package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		fails    bool
	}{
		{name: "localhost", input: "localhost:8080", wantHost: "localhost", wantPort: 8080},
		{name: "ip address", input: "127.0.0.1:9090", wantHost: "127.0.0.1", wantPort: 9090},
		{name: "empty host", input: ":8080", wantHost: "", wantPort: 8080},
		{name: "no port", input: "localhost", fails: true},
		{name: "bad port", input: "localhost:http", fails: true},
		{name: "negative port", input: "localhost:-1", fails: true},
		{name: "bad host", input: "not an ip:8080", fails: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(test.input)
			if test.fails {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.wantHost, addr.Host)
			assert.Equal(t, test.wantPort, addr.Port)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Empty(t, (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
}
