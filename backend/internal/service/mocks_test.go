package service

import (
	"context"
	"sync" // Used for tracking calls in mocks safely in parallel tests
	"testing"

	"github.com/sembang-dev/sembang/shared/domain"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// --- Mocks ---

type MockThreadStorage struct {
	createThreadFunc func(thread domain.NewThread, owner domain.UserId) (domain.AddedThread, error)
	threadByIDFunc   func(id domain.ThreadId) (domain.ThreadRecord, error)
	threadExistsFunc func(id domain.ThreadId) error

	mu                 sync.Mutex
	createThreadCalled bool
	threadExistsCalled bool
}

func (m *MockThreadStorage) CreateThread(_ context.Context, thread domain.NewThread, owner domain.UserId) (domain.AddedThread, error) {
	m.mu.Lock()
	m.createThreadCalled = true
	m.mu.Unlock()

	if m.createThreadFunc != nil {
		return m.createThreadFunc(thread, owner)
	}
	return domain.AddedThread{Id: "thread-123", Title: thread.Title, Owner: owner}, nil
}

func (m *MockThreadStorage) ThreadByID(_ context.Context, id domain.ThreadId) (domain.ThreadRecord, error) {
	if m.threadByIDFunc != nil {
		return m.threadByIDFunc(id)
	}
	return domain.ThreadRecord{Id: id, Title: "title", Body: "body", Username: "budi"}, nil
}

func (m *MockThreadStorage) ThreadExists(_ context.Context, id domain.ThreadId) error {
	m.mu.Lock()
	m.threadExistsCalled = true
	m.mu.Unlock()

	if m.threadExistsFunc != nil {
		return m.threadExistsFunc(id)
	}
	return nil
}

type MockCommentStorage struct {
	createCommentFunc      func(comment domain.NewComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error)
	commentsByThreadFunc   func(threadId domain.ThreadId) ([]domain.CommentRecord, error)
	commentExistsFunc      func(ref domain.CommentRef) error
	commentInThreadFunc    func(ref domain.CommentRef) error
	verifyCommentOwnerFunc func(owner domain.UserId, commentId domain.CommentId) error
	tombstoneCommentFunc   func(commentId domain.CommentId) error

	mu                     sync.Mutex
	createCommentCalled    bool
	verifyOwnerCalled      bool
	tombstoneCommentCalled bool
	tombstoneCommentArg    domain.CommentId
}

func (m *MockCommentStorage) CreateComment(_ context.Context, comment domain.NewComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error) {
	m.mu.Lock()
	m.createCommentCalled = true
	m.mu.Unlock()

	if m.createCommentFunc != nil {
		return m.createCommentFunc(comment, threadId, owner)
	}
	return domain.AddedComment{Id: "comment-123", Content: comment.Content, Owner: owner}, nil
}

func (m *MockCommentStorage) CommentsByThread(_ context.Context, threadId domain.ThreadId) ([]domain.CommentRecord, error) {
	if m.commentsByThreadFunc != nil {
		return m.commentsByThreadFunc(threadId)
	}
	return nil, nil
}

func (m *MockCommentStorage) CommentExists(_ context.Context, ref domain.CommentRef) error {
	if m.commentExistsFunc != nil {
		return m.commentExistsFunc(ref)
	}
	return nil
}

func (m *MockCommentStorage) CommentInThread(_ context.Context, ref domain.CommentRef) error {
	if m.commentInThreadFunc != nil {
		return m.commentInThreadFunc(ref)
	}
	return nil
}

func (m *MockCommentStorage) VerifyCommentOwner(_ context.Context, owner domain.UserId, commentId domain.CommentId) error {
	m.mu.Lock()
	m.verifyOwnerCalled = true
	m.mu.Unlock()

	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(owner, commentId)
	}
	return nil
}

func (m *MockCommentStorage) TombstoneComment(_ context.Context, commentId domain.CommentId) error {
	m.mu.Lock()
	m.tombstoneCommentCalled = true
	m.tombstoneCommentArg = commentId
	m.mu.Unlock()

	if m.tombstoneCommentFunc != nil {
		return m.tombstoneCommentFunc(commentId)
	}
	return nil
}

type MockReplyStorage struct {
	createReplyFunc      func(reply domain.NewReply, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error)
	repliesByThreadFunc  func(threadId domain.ThreadId) ([]domain.ReplyRecord, error)
	replyExistsFunc      func(ref domain.ReplyRef) error
	verifyReplyOwnerFunc func(owner domain.UserId, replyId domain.ReplyId) error
	tombstoneReplyFunc   func(replyId domain.ReplyId) error

	mu                   sync.Mutex
	createReplyCalled    bool
	createReplyArg       domain.CommentId
	verifyOwnerCalled    bool
	tombstoneReplyCalled bool
}

func (m *MockReplyStorage) CreateReply(_ context.Context, reply domain.NewReply, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error) {
	m.mu.Lock()
	m.createReplyCalled = true
	m.createReplyArg = commentId
	m.mu.Unlock()

	if m.createReplyFunc != nil {
		return m.createReplyFunc(reply, commentId, owner)
	}
	return domain.AddedReply{Id: "reply-123", Content: reply.Content, Owner: owner}, nil
}

func (m *MockReplyStorage) RepliesByThread(_ context.Context, threadId domain.ThreadId) ([]domain.ReplyRecord, error) {
	if m.repliesByThreadFunc != nil {
		return m.repliesByThreadFunc(threadId)
	}
	return nil, nil
}

func (m *MockReplyStorage) ReplyExists(_ context.Context, ref domain.ReplyRef) error {
	if m.replyExistsFunc != nil {
		return m.replyExistsFunc(ref)
	}
	return nil
}

func (m *MockReplyStorage) VerifyReplyOwner(_ context.Context, owner domain.UserId, replyId domain.ReplyId) error {
	m.mu.Lock()
	m.verifyOwnerCalled = true
	m.mu.Unlock()

	if m.verifyReplyOwnerFunc != nil {
		return m.verifyReplyOwnerFunc(owner, replyId)
	}
	return nil
}

func (m *MockReplyStorage) TombstoneReply(_ context.Context, replyId domain.ReplyId) error {
	m.mu.Lock()
	m.tombstoneReplyCalled = true
	m.mu.Unlock()

	if m.tombstoneReplyFunc != nil {
		return m.tombstoneReplyFunc(replyId)
	}
	return nil
}

type MockUserStorage struct {
	createUserFunc     func(user domain.NewUser, passHash string) (domain.AddedUser, error)
	userByUsernameFunc func(username domain.Username) (domain.User, error)

	mu               sync.Mutex
	createUserCalled bool
}

func (m *MockUserStorage) CreateUser(_ context.Context, user domain.NewUser, passHash string) (domain.AddedUser, error) {
	m.mu.Lock()
	m.createUserCalled = true
	m.mu.Unlock()

	if m.createUserFunc != nil {
		return m.createUserFunc(user, passHash)
	}
	return domain.AddedUser{Id: "user-123", Username: user.Username, Fullname: user.Fullname}, nil
}

func (m *MockUserStorage) UserByUsername(_ context.Context, username domain.Username) (domain.User, error) {
	if m.userByUsernameFunc != nil {
		return m.userByUsernameFunc(username)
	}
	return domain.User{}, nil
}

type MockJwt struct {
	newTokenFunc func(user domain.User) (string, error)
}

func (m *MockJwt) NewToken(user domain.User) (string, error) {
	if m.newTokenFunc != nil {
		return m.newTokenFunc(user)
	}
	return "token-" + user.Id, nil
}

// passthroughSanitizer returns the text as is unless textFunc is set.
type passthroughSanitizer struct {
	textFunc func(s string) string
}

func (s *passthroughSanitizer) Text(text string) string {
	if s.textFunc != nil {
		return s.textFunc(text)
	}
	return text
}
