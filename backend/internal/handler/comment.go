package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sembang-dev/sembang/shared/api"
	"github.com/sembang-dev/sembang/shared/domain"
	"github.com/sembang-dev/sembang/shared/utils"
)

func commentRef(r *http.Request) domain.CommentRef {
	return domain.CommentRef{
		ThreadId:  chi.URLParam(r, "threadId"),
		CommentId: chi.URLParam(r, "commentId"),
	}
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
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

	added, err := h.comment.Add(r.Context(), payload, chi.URLParam(r, "threadId"), owner)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedCommentResponse{AddedComment: added})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	owner, err := requester(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.comment.Delete(r.Context(), commentRef(r), owner); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
