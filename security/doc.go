// Package security builds client TLS configuration from config files.
//
//	metrics:
//	  endpoint: collector.internal:4318
//	  tls:
//	    ca_file: /etc/ssl/collector-ca.pem
//	    cert_file: /etc/ssl/objectid.pem
//	    key_file: /etc/ssl/objectid-key.pem
package security
