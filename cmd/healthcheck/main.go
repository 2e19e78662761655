package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/constants"
)

func main() {
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(healthURL(os.Getenv(constants.EnvAddress)))
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
	os.Exit(0)
}

// healthURL builds the version endpoint URL for a listen address such as
// ":8080" or "0.0.0.0:9000".
func healthURL(addr string) string {
	if addr == "" {
		addr = constants.DefaultAddress
	}
	host, port := "127.0.0.1", addr
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		if h := addr[:i]; h != "" && h != "0.0.0.0" {
			host = h
		}
		port = addr[i+1:]
	}
	return "http://" + host + ":" + port + constants.RouteAPIPrefix + constants.RouteVersion
}
