package account_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mboissel/ledger/infra/repository/memory"
	"github.com/mboissel/ledger/pkg/domain/customer"
	accountsvc "github.com/mboissel/ledger/pkg/service/account"
	accountweb "github.com/mboissel/ledger/webapi/account"
	"github.com/mboissel/ledger/webapi/common"
)

type stubDirectory struct {
	customers map[string]customer.Customer
}

func (d *stubDirectory) Fetch(_ context.Context, id string) (*customer.Customer, error) {
	c, ok := d.customers[id]
	if !ok {
		return nil, customer.ErrNotFound
	}
	return &c, nil
}

type AccountTestSuite struct {
	suite.Suite
	app   *fiber.App
	store *memory.Store
}

func (s *AccountTestSuite) SetupTest() {
	s.store = memory.NewStore()
	dir := &stubDirectory{customers: map[string]customer.Customer{
		"bcavy":   {ID: "bcavy"},
		"sdaviet": {ID: "sdaviet"},
		"cdirand": {ID: "cdirand", Banned: true},
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := accountsvc.New(s.store, s.store.Repository(), dir, logger)

	s.app = fiber.New()
	accountweb.Routes(s.app, svc)
}

func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, new(AccountTestSuite))
}

func (s *AccountTestSuite) request(method, path, body string) *http.Response {
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	s.Require().NoError(err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.app.Test(req)
	s.Require().NoError(err)
	return resp
}

func (s *AccountTestSuite) decode(resp *http.Response) common.Response {
	defer resp.Body.Close() //nolint:errcheck
	var envelope common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

// openAccount opens an account through the API and returns its id.
func (s *AccountTestSuite) openAccount(customerID, balance string) string {
	resp := s.request(fiber.MethodPost, "/accounts",
		fmt.Sprintf(`{"customer":%q,"balance":%s}`, customerID, balance))
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	data := s.decode(resp).Data.(map[string]any)
	return data["id"].(string)
}

func (s *AccountTestSuite) TestOpenAccount() {
	s.Run("opens successfully", func() {
		resp := s.request(fiber.MethodPost, "/accounts", `{"customer":"bcavy","balance":100}`)
		s.Equal(fiber.StatusCreated, resp.StatusCode)
		data := s.decode(resp).Data.(map[string]any)
		s.Equal("bcavy", data["customer"])
		s.Equal(false, data["closed"])
	})

	s.Run("banned customer", func() {
		resp := s.request(fiber.MethodPost, "/accounts", `{"customer":"cdirand","balance":100}`)
		defer resp.Body.Close() //nolint:errcheck
		s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	})

	s.Run("unknown customer", func() {
		resp := s.request(fiber.MethodPost, "/accounts", `{"customer":"nobody","balance":100}`)
		defer resp.Body.Close() //nolint:errcheck
		s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	})

	s.Run("negative opening balance", func() {
		resp := s.request(fiber.MethodPost, "/accounts", `{"customer":"bcavy","balance":-1}`)
		defer resp.Body.Close() //nolint:errcheck
		s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	})

	s.Run("missing customer field", func() {
		resp := s.request(fiber.MethodPost, "/accounts", `{"balance":100}`)
		defer resp.Body.Close() //nolint:errcheck
		s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	})

	s.Run("second account for the same customer", func() {
		s.openAccount("sdaviet", "10")
		resp := s.request(fiber.MethodPost, "/accounts", `{"customer":"sdaviet","balance":10}`)
		defer resp.Body.Close() //nolint:errcheck
		s.Equal(fiber.StatusConflict, resp.StatusCode)
	})
}

func (s *AccountTestSuite) TestDepositAndWithdraw() {
	id := s.openAccount("bcavy", "100")

	s.Run("deposit", func() {
		resp := s.request(fiber.MethodPost, "/accounts/"+id+"/deposit", `{"amount":50}`)
		s.Equal(fiber.StatusOK, resp.StatusCode)
		data := s.decode(resp).Data.(map[string]any)
		s.Equal("150", data["balance"])
	})

	s.Run("withdraw", func() {
		resp := s.request(fiber.MethodPost, "/accounts/"+id+"/withdraw", `{"amount":100}`)
		s.Equal(fiber.StatusOK, resp.StatusCode)
		data := s.decode(resp).Data.(map[string]any)
		s.Equal("50", data["balance"])
	})

	s.Run("withdrawing the full balance", func() {
		resp := s.request(fiber.MethodPost, "/accounts/"+id+"/withdraw", `{"amount":50}`)
		defer resp.Body.Close() //nolint:errcheck
		s.Equal(fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	s.Run("negative amount", func() {
		resp := s.request(fiber.MethodPost, "/accounts/"+id+"/deposit", `{"amount":-5}`)
		defer resp.Body.Close() //nolint:errcheck
		s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	})

	s.Run("unknown account", func() {
		resp := s.request(fiber.MethodPost, "/accounts/2a8e4b7e-3f00-4f68-9100-15b6bb63c2a1/deposit", `{"amount":5}`)
		defer resp.Body.Close() //nolint:errcheck
		s.Equal(fiber.StatusNotFound, resp.StatusCode)
	})

	s.Run("malformed account id", func() {
		resp := s.request(fiber.MethodPost, "/accounts/not-a-uuid/deposit", `{"amount":5}`)
		defer resp.Body.Close() //nolint:errcheck
		s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	})
}

func (s *AccountTestSuite) TestTransfer() {
	from := s.openAccount("bcavy", "100")
	to := s.openAccount("sdaviet", "0")

	s.Run("transfers between accounts", func() {
		resp := s.request(fiber.MethodPost, "/accounts/"+from+"/"+to+"/transfer", `{"amount":80}`)
		s.Equal(fiber.StatusOK, resp.StatusCode)
		data := s.decode(resp).Data.(map[string]any)
		source := data["source"].(map[string]any)
		target := data["target"].(map[string]any)
		s.Equal("20", source["balance"])
		s.Equal("80", target["balance"])
	})

	s.Run("insufficient balance", func() {
		resp := s.request(fiber.MethodPost, "/accounts/"+from+"/"+to+"/transfer", `{"amount":20}`)
		defer resp.Body.Close() //nolint:errcheck
		s.Equal(fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	s.Run("unknown source", func() {
		resp := s.request(fiber.MethodPost, "/accounts/2a8e4b7e-3f00-4f68-9100-15b6bb63c2a1/"+to+"/transfer", `{"amount":5}`)
		defer resp.Body.Close() //nolint:errcheck
		s.Equal(fiber.StatusNotFound, resp.StatusCode)
	})
}

func (s *AccountTestSuite) TestCloseAccount() {
	id := s.openAccount("bcavy", "0")

	s.Run("closes a zero-balance account", func() {
		resp := s.request(fiber.MethodDelete, "/accounts/"+id, "")
		s.Equal(fiber.StatusOK, resp.StatusCode)
		data := s.decode(resp).Data.(map[string]any)
		s.Equal(true, data["closed"])
	})

	s.Run("closed account rejects deposits", func() {
		resp := s.request(fiber.MethodPost, "/accounts/"+id+"/deposit", `{"amount":5}`)
		defer resp.Body.Close() //nolint:errcheck
		s.Equal(fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	s.Run("non-zero balance cannot close", func() {
		funded := s.openAccount("sdaviet", "10")
		resp := s.request(fiber.MethodDelete, "/accounts/"+funded, "")
		defer resp.Body.Close() //nolint:errcheck
		s.Equal(fiber.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func (s *AccountTestSuite) TestReadAccount() {
	id := s.openAccount("bcavy", "42")

	resp := s.request(fiber.MethodGet, "/accounts/"+id, "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	data := s.decode(resp).Data.(map[string]any)
	s.Equal(id, data["id"])
	s.Equal("42", data["balance"])
}
