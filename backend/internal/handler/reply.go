package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sembang-dev/sembang/shared/api"
	"github.com/sembang-dev/sembang/shared/domain"
	"github.com/sembang-dev/sembang/shared/utils"
)

func (h *Handler) AddReply(w http.ResponseWriter, r *http.Request) {
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

	added, err := h.reply.Add(r.Context(), payload, commentRef(r), owner)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedReplyResponse{AddedReply: added})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	owner, err := requester(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	ref := domain.ReplyRef{
		ThreadId:  chi.URLParam(r, "threadId"),
		CommentId: chi.URLParam(r, "commentId"),
		ReplyId:   chi.URLParam(r, "replyId"),
	}

	if err := h.reply.Delete(r.Context(), ref, owner); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
