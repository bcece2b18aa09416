package config

import "os"

// RequiredEnv is the set of variables the deployment must provide. Served
// back by GET /health/env as a presence map.
var RequiredEnv = []string{
	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"JWT_SECRET",
	"GITHUB_CLIENT_ID",
	"GITHUB_CLIENT_SECRET",
	"GITHUB_REDIRECT_URL",
}

func EnvChecks() (map[string]bool, bool) {
	checks := make(map[string]bool, len(RequiredEnv))
	ok := true
	for _, key := range RequiredEnv {
		present := os.Getenv(key) != ""
		checks[key] = present
		ok = ok && present
	}
	return checks, ok
}
