package utilities

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func queryContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, rec
}

func TestParsePage(t *testing.T) {
	cases := []struct {
		query string
		want  Page
	}{
		{"/", Page{Skip: 0, Limit: 100}},
		{"/?skip=5&limit=10", Page{Skip: 5, Limit: 10}},
		{"/?limit=0", Page{Skip: 0, Limit: 0}},
		{"/?limit=9999", Page{Skip: 0, Limit: 500}},
	}
	for _, tc := range cases {
		c, _ := queryContext(tc.query)
		page, ok := ParsePage(c, 100, 500)
		assert.True(t, ok, tc.query)
		assert.Equal(t, tc.want, page, tc.query)
	}
}

func TestParsePage_Invalid(t *testing.T) {
	for _, q := range []string{"/?skip=-1", "/?limit=-1", "/?skip=a", "/?limit=1e3"} {
		c, rec := queryContext(q)
		_, ok := ParsePage(c, 100, 500)
		assert.False(t, ok, q)
		assert.True(t, c.IsAborted(), q)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, q)
	}
}

func TestParseID(t *testing.T) {
	c, _ := queryContext("/")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := ParseID(c, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	for _, raw := range []string{"abc", "0", "-3", ""} {
		c, rec := queryContext("/")
		c.Params = gin.Params{{Key: "id", Value: raw}}
		_, ok := ParseID(c, "id")
		assert.False(t, ok, raw)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, raw)
	}
}

func TestExtractBearerToken(t *testing.T) {
	c, _ := queryContext("/")
	c.Request.Header.Set("Authorization", "Bearer abc.def")
	token, err := ExtractBearerToken(c)
	assert.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	c.Request.Header.Set("Authorization", "bearer xyz")
	token, err = ExtractBearerToken(c)
	assert.NoError(t, err)
	assert.Equal(t, "xyz", token)

	for _, header := range []string{"", "Bearer ", "Basic abc", "token"} {
		c.Request.Header.Set("Authorization", header)
		_, err = ExtractBearerToken(c)
		assert.Error(t, err, header)
	}
}

func TestPassword(t *testing.T) {
	hashed, err := HashPassword("secret")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret", hashed)
	assert.True(t, VerifyPassword("secret", hashed))
	assert.False(t, VerifyPassword("other", hashed))
	assert.False(t, VerifyPassword("secret", "not-a-hash"))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "*"}, "*"))
	assert.False(t, Contains(nil, "*"))
}

func TestRequestLog(t *testing.T) {
	c, _ := queryContext("/")
	entry := RequestLog(c, logrus.New())
	assert.NotContains(t, entry.Data, RequestIDKey)

	c.Set(RequestIDKey, "req-1")
	entry = RequestLog(c, logrus.New())
	assert.Equal(t, "req-1", entry.Data[RequestIDKey])
}
