//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"localshop-api/internal/domain/user"
	"localshop-api/internal/handler/api"
	resdto "localshop-api/internal/handler/dto/response"
	"localshop-api/internal/pkg/errs"
	"localshop-api/internal/usecase/queries"
	"localshop-api/tests/common/builder"
	"localshop-api/tests/common/httptest"
	"localshop-api/tests/common/testutil"
	commandsmock "localshop-api/tests/mock/commands"
	queriesmock "localshop-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ShopHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockShopCommands
	mockQueries  *queriesmock.MockShopQueries
	handler      *api.ShopHandler
	authUserID   uuid.UUID
}

func (s *ShopHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockShopCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockShopQueries(s.mockCtrl)
	s.handler = api.NewShopHandler(s.mockCommands, s.mockQueries)

	s.authUserID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.authUserID)
		c.Set("user_role", user.RoleShopkeeper)
		c.Next()
	}

	s.router.POST("/shops", s.handler.RegisterShop)
	s.router.GET("/shops", s.handler.ListShops)
	s.router.GET("/shops/me", authMiddleware, s.handler.GetMyShop)
	s.router.PATCH("/shops/me", authMiddleware, s.handler.UpdateShopProfile)
	s.router.GET("/shops/:id", s.handler.GetShop)
}

func (s *ShopHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestShopHandlerSuite(t *testing.T) {
	suite.Run(t, new(ShopHandlerTestSuite))
}

// ================================================================================
// TestRegisterShop
// ================================================================================

func (s *ShopHandlerTestSuite) TestRegisterShop() {
	url := "/shops"

	reqBody := builder.NewShopBuilder().BuildRegisterRequestDTO()
	returnView := builder.NewShopBuilder().BuildView()

	s.Run("success: returns 201 Created with the shop", func() {
		s.mockCommands.EXPECT().RegisterShop(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ShopResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Name, response.Name)
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: owner_name", mutate: testutil.Field("owner_name", nil)},
			{name: "missing field: email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "missing field: password", mutate: testutil.Field("password", nil)},
			{name: "missing field: phone", mutate: testutil.Field("phone", nil)},
			{name: "missing field: shop_name", mutate: testutil.Field("shop_name", nil)},
			{name: "missing field: category", mutate: testutil.Field("category", nil)},
			{name: "missing field: city", mutate: testutil.Field("city", nil)},
			{name: "missing field: address", mutate: testutil.Field("address", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "email already used",
				commandsError:  errs.ErrEmailAlreadyUsed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Email already in use",
			},
			{
				name:           "shop already exists",
				commandsError:  errs.ErrShopAlreadyExists,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already registered",
			},
			{
				name:           "invalid category",
				commandsError:  errs.ErrInvalidShopCategory,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid shop category",
			},
			{
				name:           "domain validation",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RegisterShop(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListShops
// ================================================================================

func (s *ShopHandlerTestSuite) TestListShops() {
	url := "/shops"

	views := []*queries.ShopView{
		builder.NewShopBuilder().BuildView(),
		builder.NewShopBuilder().AsSalon().BuildView(),
	}

	s.Run("success: returns all shops without filters", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ShopFilter{}).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.ShopListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: passes query filters through", func() {
		filter := queries.ShopFilter{City: "Jaipur", Category: "Salon", Search: "glamour"}
		s.mockQueries.EXPECT().List(gomock.Any(), filter).Return(views[1:], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?city=Jaipur&category=Salon&search=glamour", nil, "")

		var response []*resdto.ShopListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("Glamour Salon", response[0].Name)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ShopFilter{}).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGetShop
// ================================================================================

func (s *ShopHandlerTestSuite) TestGetShop() {
	shopID := uuid.New()
	url := "/shops/" + shopID.String()

	s.Run("success: returns the public listing view", func() {
		returnView := builder.NewShopBuilder().BuildView()
		returnView.ID = shopID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), shopID).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ShopListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(shopID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/shops/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid shop ID")
	})

	s.Run("error: 404 Not Found for missing shop", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), shopID).
			Return(nil, errs.ErrShopNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Shop not found")
	})
}

// ================================================================================
// TestGetMyShop
// ================================================================================

func (s *ShopHandlerTestSuite) TestGetMyShop() {
	url := "/shops/me"

	s.Run("success: returns the caller's shop", func() {
		returnView := builder.NewShopBuilder().WithOwnerID(s.authUserID).BuildView()

		s.mockQueries.EXPECT().GetMine(gomock.Any(), s.authUserID).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ShopResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.authUserID, response.OwnerID)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 Not Found when the owner has no shop", func() {
		s.mockQueries.EXPECT().GetMine(gomock.Any(), s.authUserID).
			Return(nil, errs.ErrShopNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Shop not found")
	})
}

// ================================================================================
// TestUpdateShopProfile
// ================================================================================

func (s *ShopHandlerTestSuite) TestUpdateShopProfile() {
	url := "/shops/me"
	reqBody := map[string]any{"shop_name": "Sharma Superstore", "city": "Jodhpur"}

	s.Run("success: returns 200 OK with the updated shop", func() {
		returnView := builder.NewShopBuilder().
			WithOwnerID(s.authUserID).
			WithName("Sharma Superstore").
			WithCity("Jodhpur").
			BuildView()

		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), s.authUserID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.ShopResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Sharma Superstore", response.Name)
		s.Equal("Jodhpur", response.City)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "shop not found",
				commandsError:  errs.ErrShopNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Shop not found",
			},
			{
				name:           "invalid category",
				commandsError:  errs.ErrInvalidShopCategory,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid shop category",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), s.authUserID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
