package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sembang-dev/sembang/shared/api"
	"github.com/sembang-dev/sembang/shared/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	owner, err := requester(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	payload, err := decodeBody(w, r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	added, err := h.thread.Create(r.Context(), payload, owner)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedThreadResponse{AddedThread: added})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	thread, err := h.thread.Get(r.Context(), chi.URLParam(r, "threadId"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, api.ThreadResponse{Thread: thread})
}
