// Package config provides configuration management for the demo website.
//
// Configuration is loaded from environment variables using the env package.
// All configuration values have defaults suitable for running in a container.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("site will listen on %s\n", cfg.GetHTTPAddr())
package config
