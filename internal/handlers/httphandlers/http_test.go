package httphandlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/conversion"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/lib"
)

type testServer struct {
	engine  *gin.Engine
	ledger  *conversion.AssetLedgerMock
	sink    *conversion.MintSinkMock
	custody string
	admin   string
	pauser  string
	miner   string
	sender  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ledger := conversion.NewAssetLedgerMock()
	sink := conversion.NewMintSinkMock()
	log := lib.NewTestLogger()

	custody := lib.GetRandomAddr()
	admin := lib.GetRandomAddr()
	pauser := lib.GetRandomAddr()
	miner := lib.GetRandomAddr()
	sender := lib.GetRandomAddr()
	ledger.Custody = custody

	journal := conversion.NewJournal(conversion.NewEventStoreMock(), 100, log)
	authority := conversion.NewAuthority(ledger, sink, custody, journal, nil, log)

	err := authority.Initialize(conversion.InitParams{
		Token:       lib.GetRandomAddr(),
		Minter:      lib.GetRandomAddr(),
		WindowStart: time.Now().Add(-time.Hour),
		WindowEnd:   time.Now().Add(time.Hour),
		Admin:       admin,
		Pauser:      pauser,
		Miner:       miner,
	})
	require.NoError(t, err)

	return &testServer{
		engine:  NewHTTPHandler(authority, journal, nil, log),
		ledger:  ledger,
		sink:    sink,
		custody: custody.Hex(),
		admin:   admin.Hex(),
		pauser:  pauser.Hex(),
		miner:   miner.Hex(),
		sender:  sender.Hex(),
	}
}

func (s *testServer) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	s.engine.ServeHTTP(recorder, req)
	return recorder
}

func addr(t *testing.T, hex string) ethcommon.Address {
	t.Helper()
	require.True(t, ethcommon.IsHexAddress(hex))
	return ethcommon.HexToAddress(hex)
}

func TestHealthCheck(t *testing.T) {
	server := newTestServer(t)
	res := server.request(t, http.MethodGet, "/healthcheck", nil)
	require.Equal(t, 200, res.Code)
}

func TestConvertEndpoint(t *testing.T) {
	server := newTestServer(t)
	server.ledger.SetBalance(addr(t, server.sender), 1000)
	server.ledger.Approve(addr(t, server.sender), addr(t, server.custody), 1000)

	res := server.request(t, http.MethodPost, "/convert", ConvertRequest{Sender: server.sender, Amount: "250"})
	require.Equal(t, 200, res.Code)

	res = server.request(t, http.MethodGet, "/balance", nil)
	require.Equal(t, 200, res.Code)
	require.Contains(t, res.Body.String(), "250")
}

func TestConvertEndpointRejections(t *testing.T) {
	server := newTestServer(t)

	// malformed amount
	res := server.request(t, http.MethodPost, "/convert", ConvertRequest{Sender: server.sender, Amount: "one hundred"})
	require.Equal(t, 400, res.Code)

	// no balance
	res = server.request(t, http.MethodPost, "/convert", ConvertRequest{Sender: server.sender, Amount: "100"})
	require.Equal(t, 400, res.Code)

	// paused maps to conflict
	res = server.request(t, http.MethodPost, "/pause", PauseRequest{Caller: server.pauser})
	require.Equal(t, 200, res.Code)
	res = server.request(t, http.MethodPost, "/convert", ConvertRequest{Sender: server.sender, Amount: "100"})
	require.Equal(t, 409, res.Code)
}

func TestDrainEndpointAuthorization(t *testing.T) {
	server := newTestServer(t)

	res := server.request(t, http.MethodPost, "/drain", DrainRequest{Caller: server.sender})
	require.Equal(t, 403, res.Code)

	// zero custody balance
	res = server.request(t, http.MethodPost, "/drain", DrainRequest{Caller: server.admin})
	require.Equal(t, 409, res.Code)

	server.ledger.SetBalance(addr(t, server.custody), 70)
	res = server.request(t, http.MethodPost, "/drain", DrainRequest{Caller: server.admin})
	require.Equal(t, 200, res.Code)
	require.Contains(t, res.Body.String(), "70")
}

func TestWindowEndpoint(t *testing.T) {
	server := newTestServer(t)
	start := time.Now().Add(time.Hour).Format(time.RFC3339)
	end := time.Now().Add(2 * time.Hour).Format(time.RFC3339)

	res := server.request(t, http.MethodPost, "/window", WindowRequest{Caller: server.admin, Start: end, End: start})
	require.Equal(t, 400, res.Code)

	res = server.request(t, http.MethodPost, "/window", WindowRequest{Caller: server.admin, Start: start, End: end})
	require.Equal(t, 200, res.Code)

	res = server.request(t, http.MethodGet, "/state", nil)
	require.Equal(t, 200, res.Code)

	var state StateResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &state))
	require.Equal(t, start, state.WindowStart)
	require.Equal(t, end, state.WindowEnd)
}

func TestRolesEndpoint(t *testing.T) {
	server := newTestServer(t)

	res := server.request(t, http.MethodGet, fmt.Sprintf("/roles/%s", server.miner), nil)
	require.Equal(t, 200, res.Code)

	var roles RolesResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &roles))
	require.False(t, roles.IsAdmin)
	require.False(t, roles.IsPauser)
	require.True(t, roles.IsMiner)

	res = server.request(t, http.MethodGet, "/roles/not-an-address", nil)
	require.Equal(t, 400, res.Code)
}

func TestEventsEndpoint(t *testing.T) {
	server := newTestServer(t)

	res := server.request(t, http.MethodPost, "/pause", PauseRequest{Caller: server.pauser})
	require.Equal(t, 200, res.Code)
	res = server.request(t, http.MethodPost, "/unpause", PauseRequest{Caller: server.pauser})
	require.Equal(t, 200, res.Code)

	res = server.request(t, http.MethodGet, "/events", nil)
	require.Equal(t, 200, res.Code)

	var events []EventItem
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &events))
	require.Len(t, events, 2)

	res = server.request(t, http.MethodGet, "/events?limit=0", nil)
	require.Equal(t, 400, res.Code)
}
