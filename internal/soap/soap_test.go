package soap

import (
	"context"
	"encoding/xml"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const echoNS = "http://example.com/echo"

type echoRequest struct {
	XMLName xml.Name `xml:"http://example.com/echo echoRequest"`
	Text    string   `xml:"text"`
}

type echoResponse struct {
	XMLName xml.Name `xml:"http://example.com/echo echoResponse"`
	Text    string   `xml:"text"`
}

type failRequest struct {
	XMLName xml.Name `xml:"http://example.com/echo failRequest"`
	Client  bool     `xml:"client"`
}

type failResponse struct {
	XMLName xml.Name `xml:"http://example.com/echo failResponse"`
}

func newTestMux() (*Mux, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	m := NewMux(logger)
	Handle(m, func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Text: strings.ToUpper(req.Text)}, nil
	})
	Handle(m, func(ctx context.Context, req *failRequest) (*failResponse, error) {
		if req.Client {
			return nil, ClientFault("bad input")
		}
		return nil, errors.New("store exploded")
	})
	return m, hook
}

func envelope(body string) string {
	return `<?xml version="1.0"?><soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">` +
		`<soap:Body>` + body + `</soap:Body></soap:Envelope>`
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/ws", strings.NewReader(body))
	r.Header.Set("Content-Type", ContentType)
	h.ServeHTTP(w, r)
	return w
}

func decodeResponse(t *testing.T, body io.Reader, v interface{}) {
	t.Helper()
	dec, start, err := readPayload(body)
	require.NoError(t, err)
	require.NoError(t, dec.DecodeElement(v, &start))
}

func decodeFault(t *testing.T, body io.Reader) Fault {
	t.Helper()
	dec, start, err := readPayload(body)
	require.NoError(t, err)
	require.Equal(t, faultName, start.Name)
	var f Fault
	require.NoError(t, dec.DecodeElement(&f, &start))
	return f
}

func TestMux_Dispatch(t *testing.T) {
	m, _ := newTestMux()

	tests := []struct {
		name string
		body string
	}{
		{
			name: "default namespace",
			body: envelope(`<echoRequest xmlns="` + echoNS + `"><text>hi</text></echoRequest>`),
		},
		{
			name: "prefixed namespace",
			body: `<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns:e="` + echoNS + `">` +
				`<soapenv:Header/><soapenv:Body><e:echoRequest><e:text>hi</e:text></e:echoRequest></soapenv:Body></soapenv:Envelope>`,
		},
		{
			name: "header with content",
			body: `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">` +
				`<soap:Header><auth><token>x</token></auth></soap:Header>` +
				`<soap:Body><echoRequest xmlns="` + echoNS + `"><text>hi</text></echoRequest></soap:Body></soap:Envelope>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, m, tt.body)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, ContentType, w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), `<soap:Envelope xmlns:soap="`+EnvelopeNS+`">`)

			var resp echoResponse
			decodeResponse(t, w.Body, &resp)
			assert.Equal(t, "HI", resp.Text)
		})
	}
}

func TestMux_Faults(t *testing.T) {
	m, hook := newTestMux()

	tests := []struct {
		name       string
		body       string
		wantCode   string
		wantString string
	}{
		{
			name:       "unknown operation",
			body:       envelope(`<pingRequest xmlns="` + echoNS + `"/>`),
			wantCode:   FaultClient,
			wantString: "no operation registered",
		},
		{
			name:       "wrong namespace",
			body:       envelope(`<echoRequest xmlns="http://other"><text>hi</text></echoRequest>`),
			wantCode:   FaultClient,
			wantString: "echoRequest",
		},
		{
			name:       "not xml",
			body:       `hello`,
			wantCode:   FaultClient,
			wantString: "malformed SOAP envelope",
		},
		{
			name:       "not an envelope",
			body:       `<echoRequest xmlns="` + echoNS + `"/>`,
			wantCode:   FaultClient,
			wantString: "malformed SOAP envelope",
		},
		{
			name:       "empty body",
			body:       envelope(``),
			wantCode:   FaultClient,
			wantString: "empty Body",
		},
		{
			name:       "handler client fault",
			body:       envelope(`<failRequest xmlns="` + echoNS + `"><client>true</client></failRequest>`),
			wantCode:   FaultClient,
			wantString: "bad input",
		},
		{
			name:       "handler error",
			body:       envelope(`<failRequest xmlns="` + echoNS + `"><client>false</client></failRequest>`),
			wantCode:   FaultServer,
			wantString: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, m, tt.body)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, ContentType, w.Header().Get("Content-Type"))
			f := decodeFault(t, w.Body)
			assert.Equal(t, tt.wantCode, f.Code)
			assert.Contains(t, f.String, tt.wantString)
		})
	}

	t.Run("handler error is logged, not leaked", func(t *testing.T) {
		hook.Reset()
		w := post(t, m, envelope(`<failRequest xmlns="`+echoNS+`"/>`))

		assert.NotContains(t, w.Body.String(), "store exploded")
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.ErrorLevel, entry.Level)
		assert.Equal(t, "fail", entry.Data["operation"])
	})
}

func TestMux_MethodNotAllowed(t *testing.T) {
	m, _ := newTestMux()

	w := httptest.NewRecorder()
	m.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
}

func TestHandle_Registration(t *testing.T) {
	m, _ := newTestMux()

	ops := m.Operations()
	require.Len(t, ops, 2)
	assert.Equal(t, xml.Name{Space: echoNS, Local: "echoRequest"}, ops[0].Request)
	assert.Equal(t, xml.Name{Space: echoNS, Local: "echoResponse"}, ops[0].Response)
	assert.Equal(t, "echo", ops[0].Name())

	assert.Panics(t, func() {
		Handle(m, func(ctx context.Context, req *echoRequest) (*echoResponse, error) { return nil, nil })
	})

	type untagged struct{ Text string }
	assert.Panics(t, func() {
		Handle(m, func(ctx context.Context, req *untagged) (*echoResponse, error) { return nil, nil })
	})
}

func TestWriteFault_EscapesText(t *testing.T) {
	var b strings.Builder
	require.NoError(t, writeFault(&b, ClientFault("<a> & b")))

	assert.Contains(t, b.String(), "<faultstring>&lt;a&gt; &amp; b</faultstring>")
	assert.Contains(t, b.String(), "<faultcode>soap:Client</faultcode>")
}

func TestClient_Call(t *testing.T) {
	m, _ := newTestMux()
	srv := httptest.NewServer(m)
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())

	t.Run("success", func(t *testing.T) {
		var resp echoResponse
		err := client.Call(context.Background(), &echoRequest{Text: "abc"}, &resp)

		require.NoError(t, err)
		assert.Equal(t, "ABC", resp.Text)
	})

	t.Run("fault", func(t *testing.T) {
		var resp failResponse
		err := client.Call(context.Background(), &failRequest{Client: true}, &resp)

		var f *Fault
		require.True(t, errors.As(err, &f))
		assert.Equal(t, FaultClient, f.Code)
		assert.Equal(t, "bad input", f.String)
	})

	t.Run("transport error", func(t *testing.T) {
		c := NewClient("http://127.0.0.1:1/ws", nil)
		var resp echoResponse
		err := c.Call(context.Background(), &echoRequest{}, &resp)

		require.Error(t, err)
		var f *Fault
		assert.False(t, errors.As(err, &f))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var resp echoResponse
		err := client.Call(ctx, &echoRequest{}, &resp)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDefinition_WSDL(t *testing.T) {
	m, _ := newTestMux()
	def := Definition{
		Service:         "EchoService",
		PortType:        "EchoPort",
		TargetNamespace: echoNS,
		Schema:          `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="` + echoNS + `"/>`,
		Path:            "/ws",
	}
	logger, _ := test.NewNullLogger()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/ws/echo.wsdl", nil)
	r.Host = "library.local:9000"
	def.WSDLHandler(m, logger).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `targetNamespace="`+echoNS+`"`)
	assert.Contains(t, body, `<wsdl:operation name="echo">`)
	assert.Contains(t, body, `<wsdl:operation name="fail">`)
	assert.Contains(t, body, `element="tns:echoResponse"`)
	assert.Contains(t, body, `<soap:address location="http://library.local:9000/ws"/>`)
	assert.Equal(t, 2, strings.Count(body, `<soap:operation soapAction=""/>`))

	var doc struct{}
	assert.NoError(t, xml.Unmarshal(w.Body.Bytes(), &doc), "wsdl must be well-formed")
}

func TestDefinition_Location(t *testing.T) {
	def := Definition{Path: "/ws"}

	r := httptest.NewRequest(http.MethodGet, "/ws/users.wsdl", nil)
	r.Host = "gw.example.com"
	assert.Equal(t, "http://gw.example.com/ws", def.Location(r))

	r.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://gw.example.com/ws", def.Location(r))
}

func TestDefinition_SchemaHandler(t *testing.T) {
	def := Definition{Schema: `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"/>`}

	w := httptest.NewRecorder()
	def.SchemaHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws/users.xsd", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "<?xml"))
	assert.Contains(t, w.Body.String(), "xs:schema")
}
