// internal/tests/application_test.go
package tests

import (
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

func (suite *APITestSuite) TestApplyAcceptAndScheduleInterview() {
	recruiter, _ := suite.signup("Rita", "rita@example.com", "recruiter")
	seeker, seekerID := suite.signup("Jay", "jay@example.com", "jobseeker")
	jobID := suite.postJob(recruiter, "Backend Engineer")

	w := suite.request(http.MethodPost, "/v1/applications", seeker, map[string]interface{}{"job": jobID})
	suite.Require().Equal(http.StatusCreated, w.Code)
	appID := gjson.Get(w.Body.String(), "data.application.id").String()
	suite.Equal("applied", gjson.Get(w.Body.String(), "data.application.status").String())
	suite.Equal("none", gjson.Get(w.Body.String(), "data.application.interview.status").String())

	w = suite.request(http.MethodPatch, "/v1/applications/"+appID+"/status", recruiter, map[string]interface{}{"status": "accepted"})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Equal("accepted", gjson.Get(w.Body.String(), "data.application.status").String())

	w = suite.request(http.MethodPut, "/v1/applications/"+appID+"/interview", recruiter, map[string]interface{}{
		"date": "2026-11-20T14:00:00Z",
		"link": "https://meet.example.com/final",
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	interview := gjson.Get(w.Body.String(), "data.application.interview")
	suite.Equal("scheduled", interview.Get("status").String())
	suite.Equal("https://meet.example.com/final", interview.Get("link").String())
	suite.Equal("2026-11-20T14:00:00Z", interview.Get("date").String())

	w = suite.request(http.MethodGet, "/v1/applications/my-interviews", seeker, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	interviews := gjson.Get(w.Body.String(), "data").Array()
	suite.Require().Len(interviews, 1)
	suite.Equal(appID, interviews[0].Get("id").String())
	suite.Equal(seekerID, interviews[0].Get("jobseeker_id").String())
	suite.Equal("Backend Engineer", interviews[0].Get("job.title").String())

	w = suite.request(http.MethodGet, "/v1/jobs/accepted-applicants", recruiter, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	accepted := gjson.Get(w.Body.String(), "data").Array()
	suite.Require().Len(accepted, 1)
	suite.Equal("jay@example.com", accepted[0].Get("jobseeker.email").String())

	w = suite.request(http.MethodDelete, "/v1/applications/"+appID+"/interview", recruiter, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	interview = gjson.Get(w.Body.String(), "data.application.interview")
	suite.Equal("cancelled", interview.Get("status").String())
	suite.Equal("https://meet.example.com/final", interview.Get("link").String())

	w = suite.request(http.MethodGet, "/v1/applications/my-interviews", seeker, nil)
	suite.Empty(gjson.Get(w.Body.String(), "data").Array())
}

func (suite *APITestSuite) TestDuplicateApplicationConflicts() {
	recruiter, _ := suite.signup("Rita", "rita@example.com", "recruiter")
	seeker, _ := suite.signup("Jay", "jay@example.com", "jobseeker")
	jobID := suite.postJob(recruiter, "Backend Engineer")
	suite.apply(seeker, jobID)

	w := suite.request(http.MethodPost, "/v1/applications", seeker, map[string]interface{}{"job": jobID})
	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("you already applied for this job", gjson.Get(w.Body.String(), "error.message").String())

	w = suite.request(http.MethodGet, "/v1/applications", seeker, nil)
	suite.Len(gjson.Get(w.Body.String(), "data").Array(), 1)
}

func (suite *APITestSuite) TestApplyToMissingJob() {
	seeker, _ := suite.signup("Jay", "jay@example.com", "jobseeker")

	w := suite.request(http.MethodPost, "/v1/applications", seeker, map[string]interface{}{"job": "7d0e8a4c-6c7e-4f1a-9a4b-2f5f0a1d9c3e"})
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("job not found", gjson.Get(w.Body.String(), "error.message").String())
}

func (suite *APITestSuite) TestRecruiterCannotApply() {
	recruiter, _ := suite.signup("Rita", "rita@example.com", "recruiter")
	jobID := suite.postJob(recruiter, "Backend Engineer")

	w := suite.request(http.MethodPost, "/v1/applications", recruiter, map[string]interface{}{"job": jobID})
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *APITestSuite) TestNonOwningRecruiterCannotChangeStatus() {
	recruiter, _ := suite.signup("Rita", "rita@example.com", "recruiter")
	otherRecruiter, _ := suite.signup("Oscar", "oscar@example.com", "recruiter")
	seeker, _ := suite.signup("Jay", "jay@example.com", "jobseeker")
	appID := suite.apply(seeker, suite.postJob(recruiter, "Backend Engineer"))

	w := suite.request(http.MethodPatch, "/v1/applications/"+appID+"/status", otherRecruiter, map[string]interface{}{"status": "accepted"})
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("not authorized", gjson.Get(w.Body.String(), "error.message").String())

	w = suite.request(http.MethodPut, "/v1/applications/"+appID+"/interview", otherRecruiter, map[string]interface{}{
		"date": "2026-11-20T14:00:00Z",
		"link": "https://meet.example.com/x",
	})
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.request(http.MethodGet, "/v1/applications", seeker, nil)
	suite.Equal("applied", gjson.Get(w.Body.String(), "data.0.status").String())
	suite.Equal("none", gjson.Get(w.Body.String(), "data.0.interview.status").String())
}

func (suite *APITestSuite) TestInvalidStatusIsBadRequest() {
	recruiter, _ := suite.signup("Rita", "rita@example.com", "recruiter")
	otherRecruiter, _ := suite.signup("Oscar", "oscar@example.com", "recruiter")
	seeker, _ := suite.signup("Jay", "jay@example.com", "jobseeker")
	appID := suite.apply(seeker, suite.postJob(recruiter, "Backend Engineer"))

	for _, token := range []string{recruiter, otherRecruiter, seeker} {
		w := suite.request(http.MethodPatch, "/v1/applications/"+appID+"/status", token, map[string]interface{}{"status": "archived"})
		suite.Equal(http.StatusBadRequest, w.Code)
		suite.Equal("invalid status", gjson.Get(w.Body.String(), "error.message").String())
	}

	w := suite.request(http.MethodGet, "/v1/applications", seeker, nil)
	suite.Equal("applied", gjson.Get(w.Body.String(), "data.0.status").String())
}

func (suite *APITestSuite) TestScheduleInterviewValidation() {
	recruiter, _ := suite.signup("Rita", "rita@example.com", "recruiter")
	seeker, _ := suite.signup("Jay", "jay@example.com", "jobseeker")
	appID := suite.apply(seeker, suite.postJob(recruiter, "Backend Engineer"))

	w := suite.request(http.MethodPut, "/v1/applications/"+appID+"/interview", recruiter, map[string]interface{}{
		"date": "2026-11-20T14:00",
		"link": "",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("VALIDATION_ERROR", gjson.Get(w.Body.String(), "error.code").String())
	suite.Equal("interview date and an http(s) link are required", gjson.Get(w.Body.String(), "error.message").String())

	w = suite.request(http.MethodPut, "/v1/applications/"+appID+"/interview", recruiter, map[string]interface{}{
		"date": "2026-11-20T14:00",
		"link": "javascript:alert(1)",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("link", gjson.Get(w.Body.String(), "error.details.0.field").String())
	suite.Equal("http_url", gjson.Get(w.Body.String(), "error.details.0.tag").String())

	w = suite.request(http.MethodPut, "/v1/applications/"+appID+"/interview", recruiter, map[string]interface{}{
		"date": "next tuesday",
		"link": "https://meet.example.com/x",
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodPut, "/v1/applications/"+appID+"/interview", recruiter, map[string]interface{}{
		"date": "2026-11-20T14:00",
		"link": "https://meet.example.com/x",
	})
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *APITestSuite) TestWithdrawApplication() {
	recruiter, _ := suite.signup("Rita", "rita@example.com", "recruiter")
	seeker, _ := suite.signup("Jay", "jay@example.com", "jobseeker")
	otherSeeker, _ := suite.signup("Kim", "kim@example.com", "jobseeker")
	appID := suite.apply(seeker, suite.postJob(recruiter, "Backend Engineer"))

	w := suite.request(http.MethodDelete, "/v1/applications/"+appID, otherSeeker, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.request(http.MethodDelete, "/v1/applications/"+appID, seeker, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodDelete, "/v1/applications/"+appID, seeker, nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.request(http.MethodGet, "/v1/applications", seeker, nil)
	suite.Empty(gjson.Get(w.Body.String(), "data").Array())
}

func (suite *APITestSuite) TestMalformedApplicationID() {
	seeker, _ := suite.signup("Jay", "jay@example.com", "jobseeker")

	w := suite.request(http.MethodDelete, "/v1/applications/not-a-uuid", seeker, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestRecruiterApplicationsByStatus() {
	recruiter, _ := suite.signup("Rita", "rita@example.com", "recruiter")
	seeker, _ := suite.signup("Jay", "jay@example.com", "jobseeker")
	otherSeeker, _ := suite.signup("Kim", "kim@example.com", "jobseeker")
	jobID := suite.postJob(recruiter, "Backend Engineer")
	held := suite.apply(seeker, jobID)
	suite.apply(otherSeeker, jobID)

	w := suite.request(http.MethodPatch, "/v1/applications/"+held+"/status", recruiter, map[string]interface{}{"status": "hold"})
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/v1/jobs/held-applicants", recruiter, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	apps := gjson.Get(w.Body.String(), "data").Array()
	suite.Require().Len(apps, 1)
	suite.Equal(held, apps[0].Get("id").String())
	suite.Equal("Jay", apps[0].Get("jobseeker.name").String())

	w = suite.request(http.MethodGet, "/v1/applications/recruiter", recruiter, nil)
	suite.Len(gjson.Get(w.Body.String(), "data").Array(), 2)

	w = suite.request(http.MethodGet, "/v1/applications/recruiter?status=archived", recruiter, nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodGet, "/v1/jobs/my-jobs", recruiter, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Len(gjson.Get(w.Body.String(), "data.0.applicants").Array(), 2)
}

func (suite *APITestSuite) TestJobseekerRejectsOwnApplication() {
	recruiter, _ := suite.signup("Rita", "rita@example.com", "recruiter")
	seeker, _ := suite.signup("Jay", "jay@example.com", "jobseeker")
	appID := suite.apply(seeker, suite.postJob(recruiter, "Backend Engineer"))

	w := suite.request(http.MethodPatch, "/v1/applications/"+appID+"/status", seeker, map[string]interface{}{"status": "accepted"})
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.request(http.MethodPatch, "/v1/applications/"+appID+"/status", seeker, map[string]interface{}{"status": "rejected"})
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("rejected", gjson.Get(w.Body.String(), "data.application.status").String())
}

func (suite *APITestSuite) TestMutationsAreAudited() {
	recruiter, _ := suite.signup("Rita", "rita@example.com", "recruiter")
	seeker, _ := suite.signup("Jay", "jay@example.com", "jobseeker")
	appID := suite.apply(seeker, suite.postJob(recruiter, "Backend Engineer"))

	suite.request(http.MethodPatch, "/v1/applications/"+appID+"/status", recruiter, map[string]interface{}{"status": "hold"})

	last := suite.store.AuditLogs[len(suite.store.AuditLogs)-1]
	suite.Equal("PATCH /v1/applications/"+appID+"/status", last.Action)
	suite.Equal("applications", last.ResourceType)
	suite.Require().NotNil(last.UserID)
	suite.Equal(http.StatusOK, last.StatusCode)

	for _, entry := range suite.store.AuditLogs {
		suite.NotContains(entry.NewValues, "password")
	}
}

func (suite *APITestSuite) TestHealthAndMetrics() {
	w := suite.request(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("healthy", gjson.Get(w.Body.String(), "status").String())

	recruiter, _ := suite.signup("Rita", "rita@example.com", "recruiter")
	seeker, _ := suite.signup("Jay", "jay@example.com", "jobseeker")
	suite.apply(seeker, suite.postJob(recruiter, "Backend Engineer"))

	w = suite.request(http.MethodGet, "/metrics", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	metrics := w.Body.String()
	suite.True(strings.Contains(metrics, `hireswipe_applications_transitions_total{operation="create",outcome="ok"}`))
	suite.True(strings.Contains(metrics, "hireswipe_http_requests_total"))
}
