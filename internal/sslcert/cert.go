// Package sslcert генерирует самоподписанные сертификаты для запуска HTTPS без внешнего CA.
package sslcert

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"
)

const defaultValidFor = 365 * 24 * time.Hour

// Generate создает самоподписанный сертификат для hosts (имена и IP) и ключ ECDSA P-256 в PEM.
func Generate(hosts []string, validFor time.Duration) ([]byte, []byte, error) {
	if validFor <= 0 {
		validFor = defaultValidFor
	}
	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128)) //nolint:mnd
	if err != nil {
		return nil, nil, fmt.Errorf("generate serial number: %w", err)
	}

	now := time.Now()
	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{Organization: []string{"acortador"}},
		NotBefore:             now.Add(-time.Minute),
		NotAfter:              now.Add(validFor),
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
	}
	for _, h := range hosts {
		if ip := net.ParseIP(h); ip != nil {
			template.IPAddresses = append(template.IPAddresses, ip)
		} else if h != "" {
			template.DNSNames = append(template.DNSNames, h)
		}
	}

	privKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate private key: %w", err)
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &privKey.PublicKey, privKey)
	if err != nil {
		return nil, nil, fmt.Errorf("generate certificate: %w", err)
	}
	keyDER, err := x509.MarshalECPrivateKey(privKey)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal private key: %w", err)
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	return certPEM, keyPEM, nil
}

// Check проверяет, что пара не пустая, ключ подходит к сертификату и сертификат действует в момент now.
func Check(certPEM, keyPEM []byte, now time.Time) error {
	if len(certPEM) == 0 || len(keyPEM) == 0 {
		return ErrBlankPEM
	}
	pair, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrKeyMismatch, err.Error())
	}
	cert, err := x509.ParseCertificate(pair.Certificate[0])
	if err != nil {
		return fmt.Errorf("parse certificate: %w", err)
	}
	if cert.NotBefore.After(now) {
		return ErrCertNotValidYet
	}
	if cert.NotAfter.Before(now) {
		return ErrCertExpired
	}
	return nil
}

// EnsurePair проверяет файлы сертификата и ключа и перегенерирует их, если файлов нет,
// они пустые или сертификат просрочен. Возвращает true, если пара была создана заново.
func EnsurePair(certPath, keyPath string, hosts []string) (bool, error) {
	certPEM, certErr := readIfExists(certPath)
	if certErr != nil {
		return false, certErr
	}
	keyPEM, keyErr := readIfExists(keyPath)
	if keyErr != nil {
		return false, keyErr
	}

	checkErr := Check(certPEM, keyPEM, time.Now())
	switch {
	case checkErr == nil:
		return false, nil
	case errors.Is(checkErr, ErrBlankPEM), errors.Is(checkErr, ErrCertExpired):
	default:
		return false, fmt.Errorf("check certificate and private key: %w", checkErr)
	}

	newCert, newKey, genErr := Generate(hosts, defaultValidFor)
	if genErr != nil {
		return false, genErr
	}
	if err := writeFile(certPath, newCert); err != nil {
		return false, err
	}
	if err := writeFile(keyPath, newKey); err != nil {
		return false, err
	}
	return true, nil
}

func readIfExists(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil { //nolint:mnd
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
