// Package memory is an in-process implementation of the forum storage
// interfaces, used for local development and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sembang-dev/sembang/backend/internal/service"
	"github.com/sembang-dev/sembang/shared/domain"
	internal_errors "github.com/sembang-dev/sembang/shared/errors"
	"github.com/sembang-dev/sembang/shared/utils"
)

var (
	errThreadNotFound  = internal_errors.NewNotFound("thread tidak ditemukan")
	errCommentNotFound = internal_errors.NewNotFound("komentar tidak ditemukan")
	errReplyNotFound   = internal_errors.NewNotFound("balasan tidak ditemukan")
	errNotOwner        = internal_errors.NewForbidden("anda tidak berhak mengakses resource ini")
)

type thread struct {
	id, title, body, owner string
	date                   time.Time
}

type comment struct {
	id, threadId, owner, content string
	date                         time.Time
	seq                          uint64
	deleted                      bool
}

type reply struct {
	id, commentId, owner, content string
	date                          time.Time
	seq                           uint64
	deleted                       bool
}

type Storage struct {
	mu       sync.RWMutex
	users    map[domain.UserId]domain.User
	byName   map[domain.Username]domain.UserId
	threads  map[domain.ThreadId]thread
	comments map[domain.CommentId]comment
	replies  map[domain.ReplyId]reply
	seq      uint64
	now      func() time.Time
}

var (
	_ service.ThreadStorage  = (*Storage)(nil)
	_ service.CommentStorage = (*Storage)(nil)
	_ service.ReplyStorage   = (*Storage)(nil)
	_ service.UserStorage    = (*Storage)(nil)
)

func New() *Storage {
	return &Storage{
		users:    make(map[domain.UserId]domain.User),
		byName:   make(map[domain.Username]domain.UserId),
		threads:  make(map[domain.ThreadId]thread),
		comments: make(map[domain.CommentId]comment),
		replies:  make(map[domain.ReplyId]reply),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Storage) Ping(context.Context) error { return nil }

// usernameOf must be called with s.mu held.
func (s *Storage) usernameOf(id domain.UserId) domain.Username {
	return s.users[id].Username
}

func (s *Storage) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// --- users ---

func (s *Storage) CreateUser(_ context.Context, newUser domain.NewUser, passHash string) (domain.AddedUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byName[newUser.Username]; taken {
		return domain.AddedUser{}, internal_errors.NewConflict("username tidak tersedia")
	}
	u := domain.User{
		Id:       utils.NewID(domain.UserPrefix),
		Username: newUser.Username,
		Fullname: newUser.Fullname,
		PassHash: passHash,
	}
	s.users[u.Id] = u
	s.byName[u.Username] = u.Id
	return domain.AddedUser{Id: u.Id, Username: u.Username, Fullname: u.Fullname}, nil
}

func (s *Storage) UserByUsername(_ context.Context, username domain.Username) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[username]
	if !ok {
		return domain.User{}, internal_errors.NewNotFound("user tidak ditemukan")
	}
	return s.users[id], nil
}

// --- threads ---

func (s *Storage) CreateThread(_ context.Context, newThread domain.NewThread, owner domain.UserId) (domain.AddedThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := thread{
		id:    utils.NewID(domain.ThreadPrefix),
		title: newThread.Title,
		body:  newThread.Body,
		owner: owner,
		date:  s.now(),
	}
	s.threads[t.id] = t
	return domain.AddedThread{Id: t.id, Title: t.title, Owner: t.owner}, nil
}

func (s *Storage) ThreadByID(_ context.Context, id domain.ThreadId) (domain.ThreadRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.threads[id]
	if !ok {
		return domain.ThreadRecord{}, errThreadNotFound
	}
	return domain.ThreadRecord{Id: t.id, Title: t.title, Body: t.body, Date: t.date, Username: s.usernameOf(t.owner)}, nil
}

func (s *Storage) ThreadExists(_ context.Context, id domain.ThreadId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.threads[id]; !ok {
		return errThreadNotFound
	}
	return nil
}

// --- comments ---

func (s *Storage) CreateComment(_ context.Context, newComment domain.NewComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.threads[threadId]; !ok {
		return domain.AddedComment{}, errThreadNotFound
	}
	c := comment{
		id:       utils.NewID(domain.CommentPrefix),
		threadId: threadId,
		owner:    owner,
		content:  newComment.Content,
		date:     s.now(),
		seq:      s.nextSeq(),
	}
	s.comments[c.id] = c
	return domain.AddedComment{Id: c.id, Content: c.content, Owner: c.owner}, nil
}

func (s *Storage) CommentsByThread(_ context.Context, threadId domain.ThreadId) ([]domain.CommentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []comment
	for _, c := range s.comments {
		if c.threadId == threadId {
			matched = append(matched, c)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].date.Equal(matched[j].date) {
			return matched[i].date.Before(matched[j].date)
		}
		return matched[i].seq < matched[j].seq
	})

	records := make([]domain.CommentRecord, 0, len(matched))
	for _, c := range matched {
		records = append(records, domain.CommentRecord{
			Id:        c.id,
			Username:  s.usernameOf(c.owner),
			Date:      c.date,
			Content:   c.content,
			Tombstone: c.deleted,
		})
	}
	return records, nil
}

func (s *Storage) CommentExists(_ context.Context, ref domain.CommentRef) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[ref.CommentId]
	if !ok || c.threadId != ref.ThreadId || c.deleted {
		return errCommentNotFound
	}
	return nil
}

func (s *Storage) CommentInThread(_ context.Context, ref domain.CommentRef) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.inThread(ref) {
		return errCommentNotFound
	}
	return nil
}

// inThread must be called with mu held.
func (s *Storage) inThread(ref domain.CommentRef) bool {
	c, ok := s.comments[ref.CommentId]
	return ok && c.threadId == ref.ThreadId
}

func (s *Storage) VerifyCommentOwner(_ context.Context, owner domain.UserId, commentId domain.CommentId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[commentId]
	if !ok {
		return errCommentNotFound
	}
	if c.owner != owner {
		return errNotOwner
	}
	return nil
}

func (s *Storage) TombstoneComment(_ context.Context, commentId domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[commentId]
	if !ok || c.deleted {
		return errCommentNotFound
	}
	c.deleted = true
	s.comments[commentId] = c
	return nil
}

// --- replies ---

func (s *Storage) CreateReply(_ context.Context, newReply domain.NewReply, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[commentId]; !ok {
		return domain.AddedReply{}, errCommentNotFound
	}
	r := reply{
		id:        utils.NewID(domain.ReplyPrefix),
		commentId: commentId,
		owner:     owner,
		content:   newReply.Content,
		date:      s.now(),
		seq:       s.nextSeq(),
	}
	s.replies[r.id] = r
	return domain.AddedReply{Id: r.id, Content: r.content, Owner: r.owner}, nil
}

func (s *Storage) RepliesByThread(_ context.Context, threadId domain.ThreadId) ([]domain.ReplyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []reply
	for _, r := range s.replies {
		if s.comments[r.commentId].threadId == threadId {
			matched = append(matched, r)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].date.Equal(matched[j].date) {
			return matched[i].date.Before(matched[j].date)
		}
		return matched[i].seq < matched[j].seq
	})

	records := make([]domain.ReplyRecord, 0, len(matched))
	for _, r := range matched {
		records = append(records, domain.ReplyRecord{
			Id:              r.id,
			Content:         r.content,
			Date:            r.date,
			Username:        s.usernameOf(r.owner),
			ParentCommentId: r.commentId,
			Tombstone:       r.deleted,
		})
	}
	return records, nil
}

func (s *Storage) ReplyExists(_ context.Context, ref domain.ReplyRef) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.replies[ref.ReplyId]
	if !ok || r.deleted || r.commentId != ref.CommentId || !s.inThread(ref.Comment()) {
		return errReplyNotFound
	}
	return nil
}

func (s *Storage) VerifyReplyOwner(_ context.Context, owner domain.UserId, replyId domain.ReplyId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.replies[replyId]
	if !ok {
		return errReplyNotFound
	}
	if r.owner != owner {
		return errNotOwner
	}
	return nil
}

func (s *Storage) TombstoneReply(_ context.Context, replyId domain.ReplyId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.replies[replyId]
	if !ok || r.deleted {
		return errReplyNotFound
	}
	r.deleted = true
	s.replies[replyId] = r
	return nil
}
