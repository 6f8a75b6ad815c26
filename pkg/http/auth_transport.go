package http

import "net/http"

type authTransport struct {
	header    string
	prefix    string
	token     string
	transport http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqCopy := req.Clone(req.Context())

	if t.token != "" {
		reqCopy.Header.Set(t.header, t.prefix+t.token)
	}

	return t.transport.RoundTrip(reqCopy)
}

// WithAuthToken sends the token as a standard bearer Authorization header.
func WithAuthToken(token string) HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &authTransport{
			header:    "Authorization",
			prefix:    "Bearer ",
			token:     token,
			transport: rt,
		}
	})
}

// WithHeaderToken sends the token in a service-specific header, e.g. "api-key"
// for Azure OpenAI or "Ocp-Apim-Subscription-Key" for Document Intelligence.
func WithHeaderToken(header, token string) HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &authTransport{
			header:    header,
			token:     token,
			transport: rt,
		}
	})
}
