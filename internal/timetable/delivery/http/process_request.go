package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"timetable-assistant/internal/model"
)

const maxUploadBytes = 2 << 20 // 2 MiB is plenty for a semester timetable

var (
	errMissingSessionID = errors.New("session id is required")
	errMissingFile      = errors.New("timetable file is required")
	errFileTooLarge     = errors.New("timetable file is too large")
)

// processScope extracts the session scope from the URI.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	id := c.Param("id")
	if id == "" {
		return model.Scope{}, errMissingSessionID
	}
	return model.Scope{SessionID: id}, nil
}

// processUploadReq reads the multipart "file" part of an upload request.
func (h *handler) processUploadReq(c *gin.Context) (uploadReq, error) {
	var req uploadReq

	fh, err := c.FormFile("file")
	if err != nil {
		return req, errMissingFile
	}
	if fh.Size > maxUploadBytes {
		return req, errFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return req, err
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return req, err
	}
	if len(content) > maxUploadBytes {
		return req, errFileTooLarge
	}

	req.Filename = fh.Filename
	req.Content = content
	return req, nil
}

// processAskReq binds and validates the ask request body.
func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processImportReq binds the optional import request body.
func (h *handler) processImportReq(c *gin.Context) (importReq, error) {
	var req importReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
