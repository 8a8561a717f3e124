// internal/tests/auth_test.go
package tests

import (
	"net/http"

	"github.com/tidwall/gjson"
)

func (suite *APITestSuite) TestUserSignup() {
	w := suite.request(http.MethodPost, "/v1/auth/signup", "", map[string]interface{}{
		"name":     "Jay Seeker",
		"email":    "jay@example.com",
		"password": "secret123",
		"age":      24,
		"role":     "jobseeker",
		"skills":   []string{"go", "sql"},
	})

	suite.Equal(http.StatusCreated, w.Code)
	body := w.Body.String()
	suite.True(gjson.Get(body, "success").Bool())
	suite.Equal("User registered successfully", gjson.Get(body, "data.message").String())
	suite.Equal("jobseeker", gjson.Get(body, "data.user.role").String())
	suite.NotEmpty(gjson.Get(body, "data.token").String())
	suite.False(gjson.Get(body, "data.user.password_hash").Exists())
}

func (suite *APITestSuite) TestUserSignupValidation() {
	w := suite.request(http.MethodPost, "/v1/auth/signup", "", map[string]interface{}{
		"name":     "Kid",
		"email":    "kid@example.com",
		"password": "secret123",
		"age":      16,
		"role":     "jobseeker",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	body := w.Body.String()
	suite.Equal("VALIDATION_ERROR", gjson.Get(body, "error.code").String())
	suite.Equal("age", gjson.Get(body, "error.details.0.field").String())
}

func (suite *APITestSuite) TestUserSignupDuplicateEmail() {
	suite.signup("Jay", "jay@example.com", "jobseeker")

	w := suite.request(http.MethodPost, "/v1/auth/signup", "", map[string]interface{}{
		"name":     "Jay Again",
		"email":    "jay@example.com",
		"password": "secret123",
		"age":      30,
		"role":     "recruiter",
	})
	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("User already exists", gjson.Get(w.Body.String(), "error.message").String())
}

func (suite *APITestSuite) TestUserLogin() {
	_, userID := suite.signup("Rita", "rita@example.com", "recruiter")

	w := suite.request(http.MethodPost, "/v1/auth/login", "", map[string]interface{}{
		"email":    "rita@example.com",
		"password": "secret123",
	})
	suite.Equal(http.StatusOK, w.Code)
	token := gjson.Get(w.Body.String(), "data.token").String()
	suite.NotEmpty(token)

	w = suite.request(http.MethodGet, "/v1/users/me", token, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(userID, gjson.Get(w.Body.String(), "data.id").String())
	suite.Equal("Rita", gjson.Get(w.Body.String(), "data.name").String())
}

func (suite *APITestSuite) TestUserLoginWrongPassword() {
	suite.signup("Rita", "rita@example.com", "recruiter")

	w := suite.request(http.MethodPost, "/v1/auth/login", "", map[string]interface{}{
		"email":    "rita@example.com",
		"password": "not-the-password",
	})
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid email or password", gjson.Get(w.Body.String(), "error.message").String())
}

func (suite *APITestSuite) TestMeRequiresToken() {
	w := suite.request(http.MethodGet, "/v1/users/me", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}
