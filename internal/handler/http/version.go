// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/alpaca-mcp/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(h.buildInfo.String())); err != nil {
		h.logger.Debug().Err(err).Msg("write version response")
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Version: h.buildInfo.BuildVersion()}
	if err := utils.WriteJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Debug().Err(err).Msg("write health response")
	}
}
