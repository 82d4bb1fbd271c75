package externalservices

import (
	"time"

	"github.com/Barcodehub/metrics-api-reactive/pkg/apihelpers"
	httpclient "github.com/Barcodehub/metrics-api-reactive/pkg/http-client"
)

type ExternalServiceConfig struct {
	Name            string           `json:"name" yaml:"name"`
	URL             string           `json:"url" yaml:"url"`
	APIKey          string           `json:"api_key" yaml:"api_key"`
	Timeout         int              `json:"timeout" yaml:"timeout"`
	MutualTLSConfig *MutualTLSConfig `json:"mtls_config" yaml:"mtls_config"`
}

type MutualTLSConfig struct {
	CertFile string `json:"cert_file" yaml:"cert_file"`
	KeyFile  string `json:"key_file" yaml:"key_file"`
	CAFile   string `json:"ca_file" yaml:"ca_file"`
}

func (sConfig ExternalServiceConfig) httpClient() httpclient.ClientConfig {
	var mTLSConfig *apihelpers.CertificatePaths
	if sConfig.MutualTLSConfig != nil {
		mTLSConfig = &apihelpers.CertificatePaths{
			CACertPath:     sConfig.MutualTLSConfig.CAFile,
			ServerCertPath: sConfig.MutualTLSConfig.CertFile,
			ServerKeyPath:  sConfig.MutualTLSConfig.KeyFile,
		}
	}

	return httpclient.ClientConfig{
		RootURL:                   sConfig.URL,
		APIKey:                    sConfig.APIKey,
		Timeout:                   time.Duration(sConfig.Timeout) * time.Second,
		MutualTLSCertificatePaths: mTLSConfig,
	}
}
