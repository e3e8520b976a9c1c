package controllers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLessonProgressDefaultsToZeroRow(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "Ira Teach", "ira@example.com")
	course := createCourse(t, instructor.ID, "Go Fundamentals")
	lesson := createLesson(t, course.ID, "Hello World")
	_, token := createUser(t, "Sam Learn", "sam@example.com")

	resp := doRequest(t, app, "GET", fmt.Sprintf("/lessons/%d/progress", lesson.ID), token, nil)
	require.Equal(t, 200, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, float64(lesson.ID), body["lessonId"])
	assert.Equal(t, false, body["completed"])
	assert.Equal(t, float64(0), body["lastPosition"])
	assert.Nil(t, body["completedAt"])
}

func TestUpsertLessonProgressCompletionCoupling(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "Ira Teach", "ira@example.com")
	course := createCourse(t, instructor.ID, "Go Fundamentals")
	lesson := createLesson(t, course.ID, "Hello World")
	_, token := createUser(t, "Sam Learn", "sam@example.com")
	path := fmt.Sprintf("/lessons/%d/progress", lesson.ID)

	// First write creates the row
	resp := doRequest(t, app, "POST", path, token, map[string]interface{}{
		"completed":    true,
		"lastPosition": 300,
	})
	require.Equal(t, 201, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, true, body["completed"])
	assert.Equal(t, float64(300), body["lastPosition"])
	assert.NotNil(t, body["completedAt"])

	// Unsetting completed clears completedAt
	resp = doRequest(t, app, "POST", path, token, map[string]interface{}{"completed": false})
	require.Equal(t, 201, resp.StatusCode)
	body = decodeMap(t, resp)
	assert.Equal(t, false, body["completed"])
	assert.Nil(t, body["completedAt"])
	assert.Equal(t, float64(300), body["lastPosition"])
}

func TestUpsertLessonProgressValidation(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "Ira Teach", "ira@example.com")
	course := createCourse(t, instructor.ID, "Go Fundamentals")
	lesson := createLesson(t, course.ID, "Hello World")
	_, token := createUser(t, "Sam Learn", "sam@example.com")
	path := fmt.Sprintf("/lessons/%d/progress", lesson.ID)

	resp := doRequest(t, app, "POST", path, token, map[string]interface{}{"lastPosition": -5})
	require.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "INVALID_LAST_POSITION", decodeMap(t, resp)["code"])

	resp = doRequest(t, app, "POST", "/lessons/9999/progress", token, map[string]interface{}{"completed": true})
	require.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "LESSON_NOT_FOUND", decodeMap(t, resp)["code"])

	// Empty update on an existing row is rejected
	doRequest(t, app, "POST", path, token, map[string]interface{}{"completed": true})
	resp = doRequest(t, app, "POST", path, token, map[string]interface{}{})
	require.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "NO_UPDATE_FIELDS", decodeMap(t, resp)["code"])
}

func TestLessonNotesLifecycle(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "Ira Teach", "ira@example.com")
	course := createCourse(t, instructor.ID, "Go Fundamentals")
	lesson := createLesson(t, course.ID, "Hello World")
	_, token := createUser(t, "Sam Learn", "sam@example.com")
	_, otherToken := createUser(t, "Pat Other", "pat@example.com")
	notesPath := fmt.Sprintf("/lessons/%d/notes", lesson.ID)

	resp := doRequest(t, app, "POST", notesPath, token, map[string]interface{}{
		"content": "Remember the zero value rules.",
	})
	require.Equal(t, 201, resp.StatusCode)
	noteID := decodeMap(t, resp)["id"].(float64)
	doRequest(t, app, "POST", notesPath, token, map[string]interface{}{"content": "Second note."})

	resp = doRequest(t, app, "GET", notesPath, token, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Len(t, decodeList(t, resp), 2)

	// Notes are private per user
	resp = doRequest(t, app, "GET", notesPath, otherToken, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Len(t, decodeList(t, resp), 0)

	notePath := fmt.Sprintf("/notes?id=%.0f", noteID)
	resp = doRequest(t, app, "PUT", notePath, otherToken, map[string]interface{}{"content": "hijack"})
	assert.Equal(t, 404, resp.StatusCode)

	resp = doRequest(t, app, "PUT", notePath, token, map[string]interface{}{"content": "Updated note."})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Updated note.", decodeMap(t, resp)["content"])

	resp = doRequest(t, app, "DELETE", notePath, token, nil)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestCreateNoteValidation(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "Ira Teach", "ira@example.com")
	course := createCourse(t, instructor.ID, "Go Fundamentals")
	lesson := createLesson(t, course.ID, "Hello World")
	_, token := createUser(t, "Sam Learn", "sam@example.com")
	notesPath := fmt.Sprintf("/lessons/%d/notes", lesson.ID)

	resp := doRequest(t, app, "POST", notesPath, token, map[string]interface{}{"content": "   "})
	require.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "MISSING_CONTENT", decodeMap(t, resp)["code"])

	resp = doRequest(t, app, "POST", "/lessons/9999/notes", token, map[string]interface{}{"content": "hi"})
	require.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "LESSON_NOT_FOUND", decodeMap(t, resp)["code"])
}
