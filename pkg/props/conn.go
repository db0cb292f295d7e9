// Derived accessors for the database-under-test connection settings.
// Implements: prd001-property-set R7.
package props

import (
	"strconv"
	"strings"
)

// Well-known connection property keys written by the build and read back by
// test orchestration.
const (
	KeyHost           = "build.db.host"
	KeyNativePort     = "build.db.native_transport_port"
	KeyRPCPort        = "build.db.rpc_port"
	KeySSLStoragePort = "build.db.ssl_storage_port"
	KeyStoragePort    = "build.db.storage_port"
	KeyMode           = "build.db.mode"
)

// Mode selects how the database under test is provisioned.
type Mode string

const (
	ModeEmbedded       Mode = "embedded"
	ModeExternal       Mode = "external"
	ModeTestcontainers Mode = "testcontainers"
)

// ParseMode matches s case-insensitively against the testcontainers and
// external modes. Anything else, including the empty string, is embedded.
func ParseMode(s string) Mode {
	switch {
	case strings.EqualFold(s, string(ModeTestcontainers)):
		return ModeTestcontainers
	case strings.EqualFold(s, string(ModeExternal)):
		return ModeExternal
	default:
		return ModeEmbedded
	}
}

// ConnectionProperties layers the well-known connection accessors over a
// PropertySet.
type ConnectionProperties struct {
	*PropertySet
}

// NewConnection loads the connection properties resource at path.
func NewConnection(path string, opts ...Option) (*ConnectionProperties, error) {
	ps, err := New(path, opts...)
	if err != nil {
		return nil, err
	}
	return &ConnectionProperties{PropertySet: ps}, nil
}

// Host returns the database host, or the empty string if unset.
func (c *ConnectionProperties) Host() string {
	v, _ := c.Get(KeyHost)
	return v
}

// SetHost records the database host.
func (c *ConnectionProperties) SetHost(host string) {
	c.Set(KeyHost, host)
}

// NativePort returns the native transport port.
func (c *ConnectionProperties) NativePort() (int, error) {
	return c.Int(KeyNativePort)
}

// SetNativePort records the native transport port.
func (c *ConnectionProperties) SetNativePort(port int) {
	c.Set(KeyNativePort, strconv.Itoa(port))
}

// RPCPort returns the RPC port.
func (c *ConnectionProperties) RPCPort() (int, error) {
	return c.Int(KeyRPCPort)
}

// SSLStoragePort returns the SSL storage port.
func (c *ConnectionProperties) SSLStoragePort() (int, error) {
	return c.Int(KeySSLStoragePort)
}

// StoragePort returns the storage port.
func (c *ConnectionProperties) StoragePort() (int, error) {
	return c.Int(KeyStoragePort)
}

// Mode returns the provisioning mode for the database under test.
func (c *ConnectionProperties) Mode() Mode {
	v, _ := c.Get(KeyMode)
	return ParseMode(v)
}
