package server

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeKeyPair writes a self-signed localhost certificate and its key into
// a temporary directory and returns their paths.
func writeKeyPair(t *testing.T) (certPath, keyPath string) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(time.Now().UnixNano()),
		Subject:      pkix.Name{CommonName: "fingerprint-server-test"},
		NotBefore:    time.Now().Add(-time.Minute),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		IPAddresses:  []net.IP{net.IPv4(127, 0, 0, 1)},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	keyDER, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	dir := t.TempDir()
	certPath = filepath.Join(dir, "cert.pem")
	keyPath = filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(certPath, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	require.NoError(t, os.WriteFile(keyPath, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER}), 0o600))

	return certPath, keyPath
}

func TestNewListener(t *testing.T) {
	_, ok := NewListener(true, "cert.pem", "key.pem").(*TLSListener)
	assert.True(t, ok)

	_, ok = NewListener(false, "cert.pem", "key.pem").(*PlainListener)
	assert.True(t, ok)
}

func TestTLSListener_Listen(t *testing.T) {
	certPath, keyPath := writeKeyPair(t)

	tests := []struct {
		name    string
		cert    string
		key     string
		addr    string
		wantErr bool
		errText string
	}{
		{name: "valid key pair", cert: certPath, key: keyPath, addr: "127.0.0.1:0"},
		{name: "missing certificate", cert: "missing.pem", key: keyPath, addr: "127.0.0.1:0", wantErr: true, errText: "failed to load TLS certificate"},
		{name: "key does not match", cert: certPath, key: certPath, addr: "127.0.0.1:0", wantErr: true, errText: "failed to load TLS certificate"},
		{name: "bad address", cert: certPath, key: keyPath, addr: "not-an-address", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ln, err := NewTLSListener(tt.cert, tt.key).Listen("tcp", tt.addr)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
				return
			}
			require.NoError(t, err)
			defer ln.Close()
			assert.Equal(t, "tcp", ln.Addr().Network())
		})
	}
}

func TestTLSListener_MinimumVersion(t *testing.T) {
	certPath, keyPath := writeKeyPair(t)

	ln, err := NewTLSListener(certPath, keyPath).Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(c net.Conn) {
				defer c.Close()
				_ = c.(*tls.Conn).Handshake()
			}(conn)
		}
	}()

	modern, err := tls.Dial("tcp", ln.Addr().String(), &tls.Config{InsecureSkipVerify: true, MinVersion: tls.VersionTLS12})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, modern.ConnectionState().Version, uint16(tls.VersionTLS12))
	modern.Close()

	legacy, err := tls.Dial("tcp", ln.Addr().String(), &tls.Config{InsecureSkipVerify: true, MaxVersion: tls.VersionTLS11})
	if err == nil {
		legacy.Close()
	}
	assert.Error(t, err)
}

func TestPlainListener_Listen(t *testing.T) {
	ln, err := NewPlainListener().Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	_, ok := ln.(*net.TCPListener)
	assert.True(t, ok)

	_, err = NewPlainListener().Listen("tcp", "not-an-address")
	assert.Error(t, err)
}
