package list_rooms

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToServiceRequest(t *testing.T) {
	req, err := ToServiceRequest(url.Values{
		"search":        {"ocean"},
		"type":          {"suite"},
		"sort":          {"price_asc"},
		"availableOnly": {"true"},
		"limit":         {"10"},
	})
	require.NoError(t, err)

	assert.Equal(t, "ocean", req.Search)
	require.NotNil(t, req.Type)
	assert.Equal(t, "suite", *req.Type)
	assert.Equal(t, "price_asc", req.Sort)
	assert.True(t, req.AvailableOnly)
	assert.Equal(t, 10, req.Limit)
}

func TestToServiceRequest_AllTypesMeansNoFilter(t *testing.T) {
	req, err := ToServiceRequest(url.Values{"type": {"all"}})
	require.NoError(t, err)
	assert.Nil(t, req.Type)
}

func TestToServiceRequest_Invalid(t *testing.T) {
	_, err := ToServiceRequest(url.Values{"limit": {"many"}})
	assert.Error(t, err)

	_, err = ToServiceRequest(url.Values{"availableOnly": {"maybe"}})
	assert.Error(t, err)
}
