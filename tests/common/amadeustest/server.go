//go:build unit || e2e

package amadeustest

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"fullplanes/internal/domain/search"
	"fullplanes/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	ClientID     = "test-client"
	ClientSecret = "test-secret"
	AccessToken  = "test-token"
)

// Response is one canned answer of the flight-offers endpoint. A zero Status means 200.
type Response struct {
	Status int
	Offers []search.RawOffer
	Body   string
}

// Server fakes the token and flight-offers endpoints. Answers are queued per departure date;
// the last queued answer repeats, and unknown dates get an empty offer list.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	responses   map[string][]Response
	calls       map[string]int
	tokenCalls  int
	tokenStatus int
	lastQuery   map[string]string
}

func NewServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		responses:   make(map[string][]Response),
		calls:       make(map[string]int),
		tokenStatus: http.StatusOK,
	}

	r := gin.New()
	r.POST("/v1/security/oauth2/token", s.token)
	r.GET("/v2/shopping/flight-offers", s.offers)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Config points cfg at the fake server and fills in matching credentials.
func (s *Server) Config(cfg config.AmadeusConfig) config.AmadeusConfig {
	cfg.BaseURL = s.URL
	cfg.TokenURL = s.URL + "/v1/security/oauth2/token"
	cfg.ClientID = ClientID
	cfg.ClientSecret = ClientSecret
	return cfg
}

func (s *Server) Queue(date string, rs ...Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[date] = append(s.responses[date], rs...)
}

// Reset drops queued answers and counters; the issued token stays valid.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = make(map[string][]Response)
	s.calls = make(map[string]int)
	s.tokenStatus = http.StatusOK
	s.lastQuery = nil
}

func (s *Server) RejectToken(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokenStatus = status
}

func (s *Server) Calls(date string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[date]
}

func (s *Server) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

func (s *Server) TokenCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokenCalls
}

func (s *Server) LastQuery() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery
}

func (s *Server) token(c *gin.Context) {
	s.mu.Lock()
	s.tokenCalls++
	status := s.tokenStatus
	s.mu.Unlock()

	if status != http.StatusOK {
		c.JSON(status, gin.H{"error": "invalid_client"})
		return
	}
	if c.PostForm("grant_type") != "client_credentials" ||
		c.PostForm("client_id") != ClientID ||
		c.PostForm("client_secret") != ClientSecret {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"type":         "amadeusOAuth2Token",
		"access_token": AccessToken,
		"token_type":   "Bearer",
		"expires_in":   1799,
	})
}

func (s *Server) offers(c *gin.Context) {
	if c.GetHeader("Authorization") != "Bearer "+AccessToken {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": []gin.H{{"status": 401, "title": "Invalid access token"}}})
		return
	}

	date := c.Query("departureDate")

	s.mu.Lock()
	s.calls[date]++
	s.lastQuery = map[string]string{
		"originLocationCode":      c.Query("originLocationCode"),
		"destinationLocationCode": c.Query("destinationLocationCode"),
		"departureDate":           date,
		"adults":                  c.Query("adults"),
		"nonStop":                 c.Query("nonStop"),
	}
	resp := Response{}
	if queue := s.responses[date]; len(queue) > 0 {
		resp = queue[0]
		if len(queue) > 1 {
			s.responses[date] = queue[1:]
		}
	}
	s.mu.Unlock()

	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	if resp.Body != "" {
		c.Data(status, "application/json", []byte(resp.Body))
		return
	}
	if status != http.StatusOK {
		c.JSON(status, gin.H{"errors": []gin.H{{"status": status}}})
		return
	}

	offers := resp.Offers
	if offers == nil {
		offers = []search.RawOffer{}
	}
	c.JSON(http.StatusOK, gin.H{"meta": gin.H{"count": len(offers)}, "data": offers})
}
