package petstoreserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	petsmemory "github.com/softpaws/petstore-api/internal/domains/pets/adapters/memory"
	petsapplication "github.com/softpaws/petstore-api/internal/domains/pets/application"
	storememory "github.com/softpaws/petstore-api/internal/domains/store/adapters/memory"
	storeapplication "github.com/softpaws/petstore-api/internal/domains/store/application"
	usersmemory "github.com/softpaws/petstore-api/internal/domains/users/adapters/memory"
	usersapplication "github.com/softpaws/petstore-api/internal/domains/users/application"
)

func newTestHandlers(t *testing.T) ApiHandleFunctions {
	t.Helper()
	gin.SetMode(gin.TestMode)
	petRepo := petsmemory.NewRepository()
	return ApiHandleFunctions{
		PetAPI:   NewPetAPI(petsapplication.NewService(petRepo)),
		StoreAPI: NewStoreAPI(storeapplication.NewService(storememory.NewRepository(), petRepo)),
		UserAPI:  NewUserAPI(usersapplication.NewService(usersmemory.NewRepository())),
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return NewRouter(newTestHandlers(t))
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func problemType(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	require.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	var problem struct {
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	return problem.Type
}

const lucaJSON = `{
	"id": 1,
	"name": "Luca",
	"category": 4,
	"photoUrls": ["http://example.com/luca.jpg"],
	"tags": [{"id": 1, "name": "royalty"}],
	"status": "available"
}`

func TestAddPet_ReturnsStoredRecord(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/pet", lucaJSON)

	require.Equal(t, http.StatusOK, rec.Code)
	var pet struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pet))
	require.Equal(t, int64(1), pet.ID)
	require.Equal(t, "Luca", pet.Name)
	require.Equal(t, "available", pet.Status)
}

func TestAddPet_MissingStatusRejected(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/pet", `{"id": 1, "name": "Luca", "category": 4, "photoUrls": [], "tags": []}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "/problems/validation-error", problemType(t, rec))
}

func TestAddPet_UnknownStatusRejected(t *testing.T) {
	router := newTestRouter(t)

	body := strings.Replace(lucaJSON, `"available"`, `"hibernating"`, 1)
	rec := doJSON(t, router, http.MethodPost, "/pet", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "/problems/validation-error", problemType(t, rec))
}

func TestAddPet_EmptyPhotoUrlsAccepted(t *testing.T) {
	router := newTestRouter(t)

	body := strings.Replace(lucaJSON, `["http://example.com/luca.jpg"]`, `[]`, 1)
	rec := doJSON(t, router, http.MethodPost, "/pet", body)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAddPet_DuplicateIDConflict(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/pet", lucaJSON).Code)

	rec := doJSON(t, router, http.MethodPost, "/pet", lucaJSON)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "/problems/duplicate-id", problemType(t, rec))
}

func TestUpdatePet_UnknownIDNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/pet", lucaJSON)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "/problems/not-found", problemType(t, rec))
}

func TestFindPetsByTags_MatchesAnyRequestedTag(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/pet", lucaJSON).Code)

	rec := doJSON(t, router, http.MethodGet, "/pet/findByTags?tags=royalty", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var pets []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pets))
	require.Len(t, pets, 1)
	require.Equal(t, "Luca", pets[0].Name)

	rec = doJSON(t, router, http.MethodGet, "/pet/findByTags?tags=nonexistent-tag", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestFindPetsByTags_MissingTagsRejected(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/pet/findByTags", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "/problems/validation-error", problemType(t, rec))
}

func TestFindPetsByStatus_RejectsUnknownStatus(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/pet/findByStatus?status=hibernating", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "/problems/validation-error", problemType(t, rec))
}

func TestGetPetByID_NonNumericIDRejected(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/pet/not-a-number", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "/problems/validation-error", problemType(t, rec))
}

func TestUpdatePetWithForm_UpdatesNameAndStatus(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/pet", lucaJSON).Code)

	rec := doJSON(t, router, http.MethodPost, "/pet/1?name=Lucy&status=sold", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var pet struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pet))
	require.Equal(t, "Lucy", pet.Name)
	require.Equal(t, "sold", pet.Status)
}

func TestUploadImage_DuplicateURLConflict(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/pet", lucaJSON).Code)

	rec := doJSON(t, router, http.MethodPost, "/pet/1/uploadImage?metadata=http%3A%2F%2Fexample.com%2Fnew.jpg", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/pet/1/uploadImage?metadata=http%3A%2F%2Fexample.com%2Fnew.jpg", "")
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "/problems/duplicate-value", problemType(t, rec))
}

func TestDeletePet_ThenGetNotFound(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/pet", lucaJSON).Code)

	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodDelete, "/pet/1", "").Code)

	rec := doJSON(t, router, http.MethodGet, "/pet/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "/problems/not-found", problemType(t, rec))
}

const orderJSON = `{
	"id": 1,
	"petId": 1,
	"quantity": 2,
	"shipDate": "2021-09-27T20:21:20.690Z",
	"status": "placed",
	"complete": false
}`

func TestPlaceOrder_Success(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/store/order", orderJSON)

	require.Equal(t, http.StatusOK, rec.Code)
	var order struct {
		ID       int64  `json:"id"`
		Status   string `json:"status"`
		Complete *bool  `json:"complete"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	require.Equal(t, int64(1), order.ID)
	require.Equal(t, "placed", order.Status)
	require.NotNil(t, order.Complete)
	require.False(t, *order.Complete)
}

func TestPlaceOrder_InvalidShipDate(t *testing.T) {
	router := newTestRouter(t)

	body := strings.Replace(orderJSON, "2021-09-27T20:21:20.690Z", "not-a-date", 1)
	rec := doJSON(t, router, http.MethodPost, "/store/order", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "/problems/invalid-date-format", problemType(t, rec))
}

func TestPlaceOrder_DuplicateIDConflict(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/store/order", orderJSON).Code)

	rec := doJSON(t, router, http.MethodPost, "/store/order", orderJSON)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "/problems/duplicate-id", problemType(t, rec))
}

func TestGetInventory_ZeroFilled(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/store/inventory", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var inventory map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inventory))
	require.Equal(t, map[string]int64{"available": 0, "sold": 0, "pending": 0}, inventory)
}

func TestGetInventory_CountsPets(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/pet", lucaJSON).Code)

	rec := doJSON(t, router, http.MethodGet, "/store/inventory", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var inventory map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inventory))
	require.Equal(t, int64(1), inventory["available"])
}

func TestDeleteOrder_UnknownIDNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodDelete, "/store/order/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "/problems/not-found", problemType(t, rec))
}

const aliceJSON = `{
	"id": 1,
	"username": "alice",
	"firstName": "Alice",
	"lastName": "Doe",
	"email": "alice@example.com",
	"password": "secret",
	"phone": "555-0100",
	"userStatus": 1
}`

func TestCreateUser_Success(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/user", aliceJSON)

	require.Equal(t, http.StatusOK, rec.Code)
	var user struct {
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.Equal(t, "alice", user.Username)
}

func TestCreateUser_DuplicateUsernameConflict(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/user", aliceJSON).Code)

	body := strings.Replace(aliceJSON, `"id": 1`, `"id": 2`, 1)
	rec := doJSON(t, router, http.MethodPost, "/user", body)

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "/problems/duplicate-username", problemType(t, rec))
}

func TestCreateUsersWithList_Success(t *testing.T) {
	router := newTestRouter(t)

	bob := strings.Replace(strings.Replace(aliceJSON, `"id": 1`, `"id": 2`, 1), `"alice"`, `"bob"`, 1)
	rec := doJSON(t, router, http.MethodPost, "/user/createWithList", "["+aliceJSON+","+bob+"]")

	require.Equal(t, http.StatusOK, rec.Code)
	var users []struct {
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 2)
}

func TestLoginUser_WrongPasswordUnauthorized(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/user", aliceJSON).Code)

	rec := doJSON(t, router, http.MethodGet, "/user/login?username=alice&password=wrong", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "/problems/invalid-credential", problemType(t, rec))
}

func TestLoginUser_UnknownUsernameNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/user/login?username=bob&password=whatever", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "/problems/not-found", problemType(t, rec))
}

func TestLoginUser_Success(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/user", aliceJSON).Code)

	rec := doJSON(t, router, http.MethodGet, "/user/login?username=alice&password=secret", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "User logged in!")
}

func TestLogoutUser_AlwaysConfirms(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/user/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "user logged out!")
}

func TestUpdateUser_EchoesSubmittedPayload(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/user", aliceJSON).Code)

	body := strings.Replace(aliceJSON, `"555-0100"`, `"555-0199"`, 1)
	rec := doJSON(t, router, http.MethodPut, "/user/alice", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var user struct {
		Phone string `json:"phone"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.Equal(t, "555-0199", user.Phone)
}

func TestDeleteUser_ConfirmationNamesUsername(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/user", aliceJSON).Code)

	rec := doJSON(t, router, http.MethodDelete, "/user/alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "alice user was deleted!")

	rec = doJSON(t, router, http.MethodGet, "/user/alice", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddPet_ZeroValuedFieldsAccepted(t *testing.T) {
	router := newTestRouter(t)

	body := strings.Replace(lucaJSON, `"id": 1`, `"id": 0`, 1)
	body = strings.Replace(body, `"category": 4`, `"category": 0`, 1)
	rec := doJSON(t, router, http.MethodPost, "/pet", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var pet struct {
		ID       int64 `json:"id"`
		Category int64 `json:"category"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pet))
	require.Equal(t, int64(0), pet.ID)
	require.Equal(t, int64(0), pet.Category)
}

func TestPlaceOrder_ZeroQuantityAccepted(t *testing.T) {
	router := newTestRouter(t)

	body := strings.Replace(orderJSON, `"quantity": 2`, `"quantity": 0`, 1)
	rec := doJSON(t, router, http.MethodPost, "/store/order", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var order struct {
		Quantity int32 `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	require.Equal(t, int32(0), order.Quantity)
}

func TestCreateUser_ZeroUserStatusAccepted(t *testing.T) {
	router := newTestRouter(t)

	body := strings.Replace(aliceJSON, `"userStatus": 1`, `"userStatus": 0`, 1)
	rec := doJSON(t, router, http.MethodPost, "/user", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var user struct {
		UserStatus int32 `json:"userStatus"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.Equal(t, int32(0), user.UserStatus)
}

func TestCreateUser_MissingUserStatusRejected(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"id": 1,
		"username": "alice",
		"firstName": "Alice",
		"lastName": "Doe",
		"email": "alice@example.com",
		"password": "secret",
		"phone": "555-0100"
	}`
	rec := doJSON(t, router, http.MethodPost, "/user", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "/problems/validation-error", problemType(t, rec))
}

func TestLoginUser_EmptyPasswordUnauthorized(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/user", aliceJSON).Code)

	// The password key is present but empty; that is a failed credential
	// check, not a malformed request.
	rec := doJSON(t, router, http.MethodGet, "/user/login?username=alice&password=", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "/problems/invalid-credential", problemType(t, rec))
}

func TestNewRouterWithGinEngine_KeepsEarlierMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	var hits int
	engine.Use(func(c *gin.Context) {
		hits++
		c.Next()
	})
	router := NewRouterWithGinEngine(engine, newTestHandlers(t))

	rec := doJSON(t, router, http.MethodGet, "/store/inventory", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, hits)
}
