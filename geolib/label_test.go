package geolib_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Fatty911/nodes-subconverter/geolib"
	"github.com/stretchr/testify/suite"
)

type RewriteNameTestSuite struct {
	suite.Suite
}

func (suite *RewriteNameTestSuite) TestSuccess() {
	suite.Equal("Real:US***-Nominal:US-node1",
		geolib.RewriteName("US-node1", "US", nil))
	suite.Equal("Real:DE Berlin***-Nominal:n",
		geolib.RewriteName("n", "DE Berlin", nil))
}

func (suite *RewriteNameTestSuite) TestAPIError() {
	err := &geolib.APIError{Reason: "private range"}

	suite.Equal("[private range]-node", geolib.RewriteName("node", "", err))
}

func (suite *RewriteNameTestSuite) TestWrappedAPIError() {
	err := fmt.Errorf("cannot resolve: %w", &geolib.APIError{Reason: "quota"})

	suite.Equal("[quota]-node", geolib.RewriteName("node", "", err))
}

func (suite *RewriteNameTestSuite) TestStatusError() {
	err := &geolib.StatusError{StatusCode: 502, Status: "502 Bad Gateway"}

	suite.Equal("[HTTP query failed]-node", geolib.RewriteName("node", "", err))
}

func (suite *RewriteNameTestSuite) TestTransportTimeout() {
	err := &geolib.TransportError{Err: errors.New("deadline"), TimedOut: true}

	suite.Equal("[query exception-timeout]-node", geolib.RewriteName("node", "", err))
}

func (suite *RewriteNameTestSuite) TestTransportNoTimeout() {
	err := &geolib.TransportError{Err: errors.New("refused"), TimedOut: false}

	suite.Equal("[query exception]-node", geolib.RewriteName("node", "", err))
}

func (suite *RewriteNameTestSuite) TestUnknownError() {
	suite.Equal("[query exception]-node",
		geolib.RewriteName("node", "", errors.New("boom")))
}

func (suite *RewriteNameTestSuite) TestNotIdempotent() {
	once := geolib.RewriteName("node", "FR", nil)
	twice := geolib.RewriteName(once, "US", nil)

	suite.Equal("Real:US***-Nominal:Real:FR***-Nominal:node", twice)
}

func TestRewriteName(t *testing.T) {
	suite.Run(t, &RewriteNameTestSuite{})
}
