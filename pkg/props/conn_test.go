package props

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
	}{
		{"testcontainers", ModeTestcontainers},
		{"TESTCONTAINERS", ModeTestcontainers},
		{"TestContainers", ModeTestcontainers},
		{"external", ModeExternal},
		{"External", ModeExternal},
		{"embedded", ModeEmbedded},
		{"EMBEDDED", ModeEmbedded},
		{"banana", ModeEmbedded},
		{"", ModeEmbedded},
	}
	for _, tt := range tests {
		if got := ParseMode(tt.input); got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func newTestConn(t *testing.T, content string) *ConnectionProperties {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db-connection.properties")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := NewConnection(path, WithOverrides(NewOverrides()))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestConnectionAccessors(t *testing.T) {
	c := newTestConn(t, ""+
		"build.db.host=db.local\n"+
		"build.db.native_transport_port=9042\n"+
		"build.db.rpc_port=9160\n"+
		"build.db.ssl_storage_port=7001\n"+
		"build.db.storage_port=7000\n"+
		"build.db.mode=Testcontainers\n")

	if got := c.Host(); got != "db.local" {
		t.Errorf("Host() = %q, want db.local", got)
	}
	if got, err := c.NativePort(); err != nil || got != 9042 {
		t.Errorf("NativePort() = %d, %v, want 9042, nil", got, err)
	}
	if got, err := c.RPCPort(); err != nil || got != 9160 {
		t.Errorf("RPCPort() = %d, %v, want 9160, nil", got, err)
	}
	if got, err := c.SSLStoragePort(); err != nil || got != 7001 {
		t.Errorf("SSLStoragePort() = %d, %v, want 7001, nil", got, err)
	}
	if got, err := c.StoragePort(); err != nil || got != 7000 {
		t.Errorf("StoragePort() = %d, %v, want 7000, nil", got, err)
	}
	if got := c.Mode(); got != ModeTestcontainers {
		t.Errorf("Mode() = %q, want testcontainers", got)
	}
}

func TestConnectionSetters(t *testing.T) {
	c := newTestConn(t, "")

	c.SetHost("other.host")
	c.SetNativePort(19042)

	if got := c.Host(); got != "other.host" {
		t.Errorf("Host() after SetHost = %q", got)
	}
	if got, err := c.NativePort(); err != nil || got != 19042 {
		t.Errorf("NativePort() after SetNativePort = %d, %v", got, err)
	}
}

func TestConnectionModeDefaults(t *testing.T) {
	c := newTestConn(t, "build.db.host=x\n")
	if got := c.Mode(); got != ModeEmbedded {
		t.Errorf("Mode() with no mode key = %q, want embedded", got)
	}

	c.Set(KeyMode, "junk")
	if got := c.Mode(); got != ModeEmbedded {
		t.Errorf("Mode() with unknown value = %q, want embedded", got)
	}
}

func TestConnectionPortConversionError(t *testing.T) {
	c := newTestConn(t, "build.db.native_transport_port=lots\n")
	if _, err := c.NativePort(); err == nil {
		t.Error("NativePort() on a non-numeric value should error")
	}
}
