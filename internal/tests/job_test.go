// internal/tests/job_test.go
package tests

import (
	"net/http"

	"github.com/tidwall/gjson"
)

func (suite *APITestSuite) TestPostAndBrowseJobs() {
	recruiter, recruiterID := suite.signup("Rita", "rita@example.com", "recruiter")
	jobID := suite.postJob(recruiter, "Backend Developer")
	suite.postJob(recruiter, "Frontend Developer")

	w := suite.request(http.MethodGet, "/v1/jobs?q=backend", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	suite.Equal(int64(1), gjson.Get(body, "meta.pagination.total").Int())
	suite.Equal("Backend Developer", gjson.Get(body, "data.0.title").String())
	suite.Equal("1", w.Header().Get("X-Total-Count"))

	w = suite.request(http.MethodGet, "/v1/jobs?max_experience=1", "", nil)
	suite.Equal(int64(0), gjson.Get(w.Body.String(), "meta.pagination.total").Int())

	w = suite.request(http.MethodGet, "/v1/jobs?max_experience=lots", "", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodGet, "/v1/jobs/"+jobID, "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal(recruiterID, gjson.Get(w.Body.String(), "data.posted_by").String())

	w = suite.request(http.MethodGet, "/v1/jobs/7d0e8a4c-6c7e-4f1a-9a4b-2f5f0a1d9c3e", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestJobseekerCannotPostJobs() {
	seeker, _ := suite.signup("Jay", "jay@example.com", "jobseeker")

	w := suite.request(http.MethodPost, "/v1/jobs", seeker, map[string]interface{}{
		"title":       "Sneaky",
		"company":     "Nope",
		"location":    "Nowhere",
		"description": "Should not be posted",
	})
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *APITestSuite) TestSavedJobs() {
	recruiter, _ := suite.signup("Rita", "rita@example.com", "recruiter")
	seeker, _ := suite.signup("Jay", "jay@example.com", "jobseeker")
	jobID := suite.postJob(recruiter, "Backend Developer")

	w := suite.request(http.MethodPost, "/v1/saved-jobs", seeker, map[string]interface{}{"job": jobID})
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.request(http.MethodPost, "/v1/saved-jobs", seeker, map[string]interface{}{"job": jobID})
	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("job already saved", gjson.Get(w.Body.String(), "error.message").String())

	w = suite.request(http.MethodGet, "/v1/saved-jobs", seeker, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("Backend Developer", gjson.Get(w.Body.String(), "data.0.job.title").String())

	w = suite.request(http.MethodDelete, "/v1/saved-jobs/"+jobID, seeker, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/v1/saved-jobs", seeker, nil)
	suite.Empty(gjson.Get(w.Body.String(), "data").Array())
}
