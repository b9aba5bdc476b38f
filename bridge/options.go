package bridge

import "time"

// DefaultURL is used when neither the argument nor the environment provides one.
const DefaultURL = "http://localhost:3080/sse"

type Options struct {
	URL          string        `short:"u" long:"url" env:"MCP_SSE_URL" description:"SSE endpoint url"`
	EndpointPath bool          `short:"e" long:"endpoint-path" description:"post messages to the path announced by the endpoint event instead of the SSE url path"`
	Timeout      time.Duration `short:"t" long:"timeout" description:"per message POST timeout, 0 disables"`
	Debug        bool          `short:"d" long:"debug" env:"MCP_BRIDGE_DEBUG" description:"enable debug diagnostics"`
	Args         struct {
		URL string `positional-arg-name:"url" description:"SSE endpoint url, overrides --url"`
	} `positional-args:"yes"`
}

// EndpointURL resolves the SSE url: positional argument, then --url/MCP_SSE_URL, then DefaultURL.
func (o *Options) EndpointURL() string {
	if o.Args.URL != "" {
		return o.Args.URL
	}
	if o.URL != "" {
		return o.URL
	}
	return DefaultURL
}
