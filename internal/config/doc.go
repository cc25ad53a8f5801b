// Package config provides configuration management for the test web app.
//
// The only setting is the listening port, read from the PORT environment
// variable using the env package. When PORT is absent the server listens
// on 3000.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.GetHTTPAddr())
package config
