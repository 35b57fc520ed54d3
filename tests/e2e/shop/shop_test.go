//go:build e2e

package shop_test

import (
	"fmt"
	"net/http"
	"testing"

	"localshop-api/internal/domain/user"
	"localshop-api/internal/handler/dto/response"
	"localshop-api/tests/common/authtest"
	"localshop-api/tests/common/builder"
	"localshop-api/tests/common/httptest"
	"localshop-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	shopsURL    = "/api/shops"
	myShopURL   = "/api/shops/me"
	shopURLFmt  = "/api/shops/%s"
	productsURL = "/api/products"
)

type ShopSuite struct {
	e2e.SharedSuite
}

func (s *ShopSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestShopSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ShopSuite))
}

func (s *ShopSuite) registerShop(b *builder.ShopBuilder) response.ShopResponse {
	t := s.T()
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, shopsURL, b.BuildRegisterRequestDTO(), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.ShopResponse
	err := httptest.DecodeResponseBody(t, w.Body, &created)
	require.NoError(t, err)
	return created
}

func (s *ShopSuite) ownerToken(shop response.ShopResponse) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), shop.OwnerID, user.RoleShopkeeper)
}

// =============================================================================
// TestRegisterShop - Shop registration API tests
// =============================================================================

func (s *ShopSuite) TestRegisterShop() {
	s.Run("Normal case: Registration creates owner and shop", func() {
		t := s.T()

		created := s.registerShop(builder.NewShopBuilder())
		require.NotEmpty(t, created.ID)
		require.NotEmpty(t, created.OwnerID)
		require.Equal(t, "owner@example.com", created.OwnerEmail)
		require.Equal(t, "Sharma General Store", created.Name)
		require.False(t, created.SubscriptionExpiresAt.IsZero(), "Subscription term should be set")

		// Public detail endpoint serves the listing shape
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(shopURLFmt, created.ID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.ShopListResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)

		expected := &response.ShopListResponse{
			Name:           "Sharma General Store",
			Category:       "Grocery",
			City:           "Jaipur",
			Address:        "12 MI Road",
			OpeningTime:    "09:00",
			ClosingTime:    "21:00",
			OffersDelivery: true,
			Rating:         0,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ShopListResponse{}, "ID"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Shop response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: Duplicate email is rejected", func() {
		t := s.T()

		s.registerShop(builder.NewShopBuilder())

		dup := builder.NewShopBuilder().WithName("Another Store")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, shopsURL, dup.BuildRegisterRequestDTO(), "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Email already in use")
	})

	s.Run("Error case: Unknown category is rejected", func() {
		t := s.T()

		req := builder.NewShopBuilder().WithCategory("Carwash").BuildRegisterRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, shopsURL, req, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid shop category")
	})

	s.Run("Error case: Short password fails domain validation", func() {
		t := s.T()

		b := builder.NewShopBuilder().With(func(b *builder.ShopBuilder) { b.Password = "abc" })
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, shopsURL, b.BuildRegisterRequestDTO(), "")
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}

// =============================================================================
// TestListShops - Public shop listing with filters
// =============================================================================

func (s *ShopSuite) TestListShops() {
	seed := func() {
		grocery := builder.NewShopBuilder()
		s.registerShop(grocery)

		salon := builder.NewShopBuilder().AsSalon().WithCity("Mumbai").With(func(b *builder.ShopBuilder) {
			b.OwnerEmail = "salon@example.com"
		})
		s.registerShop(salon)
	}

	listShops := func(query string) []response.ShopListResponse {
		t := s.T()
		t.Helper()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, shopsURL+query, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var shops []response.ShopListResponse
		err := httptest.DecodeResponseBody(t, w.Body, &shops)
		require.NoError(t, err)
		return shops
	}

	s.Run("Normal case: No filter returns every shop", func() {
		seed()
		shops := listShops("")
		require.Len(s.T(), shops, 2)
	})

	s.Run("Normal case: City and category filters narrow the result", func() {
		seed()

		byCity := listShops("?city=Mumbai")
		require.Len(s.T(), byCity, 1)
		require.Equal(s.T(), "Glamour Salon", byCity[0].Name)

		byCategory := listShops("?category=Grocery")
		require.Len(s.T(), byCategory, 1)
		require.Equal(s.T(), "Sharma General Store", byCategory[0].Name)

		all := listShops("?city=All&category=All")
		require.Len(s.T(), all, 2)
	})

	s.Run("Normal case: Search matches shop name case-insensitively", func() {
		seed()
		found := listShops("?search=glamour")
		require.Len(s.T(), found, 1)
		require.Equal(s.T(), "Glamour Salon", found[0].Name)
	})
}

// =============================================================================
// TestMyShop - Shopkeeper self-service endpoints
// =============================================================================

func (s *ShopSuite) TestMyShop() {
	s.Run("Normal case: Owner reads own shop with contact details", func() {
		t := s.T()

		created := s.registerShop(builder.NewShopBuilder())
		token := s.ownerToken(created)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, myShopURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var mine response.ShopResponse
		err := httptest.DecodeResponseBody(t, w.Body, &mine)
		require.NoError(t, err)
		require.Equal(t, created.ID, mine.ID)
		require.Equal(t, created.OwnerID, mine.OwnerID)
		require.Equal(t, "owner@example.com", mine.OwnerEmail)
	})

	s.Run("Error case: Missing token is unauthorized", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, myShopURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("Error case: Customer role is rejected", func() {
		t := s.T()

		created := s.registerShop(builder.NewShopBuilder())
		customerToken := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, created.OwnerID, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, myShopURL, nil, customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("Normal case: Partial profile update keeps untouched fields", func() {
		t := s.T()

		created := s.registerShop(builder.NewShopBuilder())
		token := s.ownerToken(created)

		patch := map[string]any{
			"shop_name": "Sharma Super Store",
			"city":      "Pune",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, myShopURL, patch, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.ShopResponse
		err := httptest.DecodeResponseBody(t, w.Body, &updated)
		require.NoError(t, err)
		require.Equal(t, "Sharma Super Store", updated.Name)
		require.Equal(t, "Pune", updated.City)
		require.Equal(t, "Grocery", updated.Category, "Category should survive a partial patch")
		require.Equal(t, "12 MI Road", updated.Address, "Address should survive a partial patch")
	})

	s.Run("Error case: Patch with unknown category is rejected", func() {
		t := s.T()

		created := s.registerShop(builder.NewShopBuilder())
		token := s.ownerToken(created)

		patch := map[string]any{"category": "Carwash"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, myShopURL, patch, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid shop category")
	})
}

// =============================================================================
// TestProductLifecycle - Catalog management through the API
// =============================================================================

func (s *ShopSuite) TestProductLifecycle() {
	createProduct := func(token string, b *builder.ProductBuilder) response.ProductResponse {
		t := s.T()
		t.Helper()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, productsURL, b.BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.ProductResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		return created
	}

	s.Run("Normal case: Created product appears in public catalog", func() {
		t := s.T()

		shop := s.registerShop(builder.NewShopBuilder())
		token := s.ownerToken(shop)

		created := createProduct(token, builder.NewProductBuilder().WithName("Basmati Rice"))
		require.Equal(t, shop.ID, created.ShopID)
		require.True(t, created.InStock)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(shopURLFmt+"/products", shop.ID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var catalog []response.ProductResponse
		err := httptest.DecodeResponseBody(t, w.Body, &catalog)
		require.NoError(t, err)
		require.Len(t, catalog, 1)
		require.Equal(t, "Basmati Rice", catalog[0].Name)
	})

	s.Run("Normal case: Owner listing matches created products", func() {
		t := s.T()

		shop := s.registerShop(builder.NewShopBuilder())
		token := s.ownerToken(shop)

		createProduct(token, builder.NewProductBuilder().WithName("Basmati Rice"))
		createProduct(token, builder.NewProductBuilder().WithName("Toor Dal"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var mine []response.ProductResponse
		err := httptest.DecodeResponseBody(t, w.Body, &mine)
		require.NoError(t, err)
		require.Len(t, mine, 2)
	})

	s.Run("Normal case: Owner deletes own product", func() {
		t := s.T()

		shop := s.registerShop(builder.NewShopBuilder())
		token := s.ownerToken(shop)
		created := createProduct(token, builder.NewProductBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, productsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(shopURLFmt+"/products", shop.ID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var catalog []response.ProductResponse
		err := httptest.DecodeResponseBody(t, w.Body, &catalog)
		require.NoError(t, err)
		require.Empty(t, catalog)
	})

	s.Run("Error case: Deleting another shop's product is forbidden", func() {
		t := s.T()

		shop := s.registerShop(builder.NewShopBuilder())
		created := createProduct(s.ownerToken(shop), builder.NewProductBuilder())

		other := s.registerShop(builder.NewShopBuilder().AsSalon().With(func(b *builder.ShopBuilder) {
			b.OwnerEmail = "salon@example.com"
		}))
		otherToken := s.ownerToken(other)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, productsURL+"/"+created.ID.String(), nil, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Not allowed to modify this product")
	})
}
