package domain

var (
	newThreadShape = shape{
		fields:     []field{{"title", kindString}, {"body", kindString}},
		missingMsg: "cannot create new thread: required property missing",
		typeMsg:    "cannot create new thread: property type mismatch",
		valueMsg:   "cannot create new thread: title or body too long",
	}
	newCommentShape = shape{
		fields:     []field{{"content", kindString}},
		missingMsg: "cannot create new comment: required property missing",
		typeMsg:    "cannot create new comment: property type mismatch",
		valueMsg:   "cannot create new comment: content too long",
	}
	newReplyShape = shape{
		fields:     []field{{"content", kindString}},
		missingMsg: "cannot create new reply: required property missing",
		typeMsg:    "cannot create new reply: property type mismatch",
		valueMsg:   "cannot create new reply: content too long",
	}
	newUserShape = shape{
		fields:     []field{{"username", kindString}, {"password", kindString}, {"fullname", kindString}},
		missingMsg: "cannot create new user: required property missing",
		typeMsg:    "cannot create new user: property type mismatch",
		valueMsg:   "cannot create new user: username must be at most 50 letters, digits or underscores and password 6 to 72 characters",
	}
	credentialsShape = shape{
		fields:     []field{{"username", kindString}, {"password", kindString}},
		missingMsg: "must provide username and password",
		typeMsg:    "username and password must be strings",
		valueMsg:   "username or password too long",
	}
	addedThreadShape = shape{
		fields:     []field{{"id", kindString}, {"title", kindString}, {"owner", kindString}},
		missingMsg: "added thread: required property missing",
		typeMsg:    "added thread: property type mismatch",
	}
	addedCommentShape = shape{
		fields:     []field{{"id", kindString}, {"content", kindString}, {"owner", kindString}},
		missingMsg: "added comment: required property missing",
		typeMsg:    "added comment: property type mismatch",
	}
	addedReplyShape = shape{
		fields:     []field{{"id", kindString}, {"content", kindString}, {"owner", kindString}},
		missingMsg: "added reply: required property missing",
		typeMsg:    "added reply: property type mismatch",
	}
	detailCommentShape = shape{
		fields: []field{
			{"id", kindString}, {"username", kindString}, {"date", kindTime},
			{"content", kindString}, {"replies", kindList}, {"tombstone", kindBool},
		},
		missingMsg: "detail comment: required property missing",
		typeMsg:    "detail comment: property type mismatch",
	}
	detailReplyShape = shape{
		fields: []field{
			{"id", kindString}, {"content", kindString}, {"date", kindTime},
			{"username", kindString}, {"parentCommentId", kindString}, {"tombstone", kindBool},
		},
		missingMsg: "detail reply: required property missing",
		typeMsg:    "detail reply: property type mismatch",
	}
)

func ParseNewThread(p Payload) (NewThread, error) {
	if err := newThreadShape.check(p); err != nil {
		return NewThread{}, err
	}
	t := NewThread{Title: p.str("title"), Body: p.str("body")}
	if err := newThreadShape.constraints(t); err != nil {
		return NewThread{}, err
	}
	return t, nil
}

func ParseNewComment(p Payload) (NewComment, error) {
	if err := newCommentShape.check(p); err != nil {
		return NewComment{}, err
	}
	c := NewComment{Content: p.str("content")}
	if err := newCommentShape.constraints(c); err != nil {
		return NewComment{}, err
	}
	return c, nil
}

func ParseNewReply(p Payload) (NewReply, error) {
	if err := newReplyShape.check(p); err != nil {
		return NewReply{}, err
	}
	r := NewReply{Content: p.str("content")}
	if err := newReplyShape.constraints(r); err != nil {
		return NewReply{}, err
	}
	return r, nil
}

func ParseNewUser(p Payload) (NewUser, error) {
	if err := newUserShape.check(p); err != nil {
		return NewUser{}, err
	}
	u := NewUser{Username: p.str("username"), Password: p.str("password"), Fullname: p.str("fullname")}
	if err := newUserShape.constraints(u); err != nil {
		return NewUser{}, err
	}
	return u, nil
}

func ParseCredentials(p Payload) (Credentials, error) {
	if err := credentialsShape.check(p); err != nil {
		return Credentials{}, err
	}
	c := Credentials{Username: p.str("username"), Password: p.str("password")}
	if err := credentialsShape.constraints(c); err != nil {
		return Credentials{}, err
	}
	return c, nil
}

func ParseAddedThread(p Payload) (AddedThread, error) {
	if err := addedThreadShape.check(p); err != nil {
		return AddedThread{}, err
	}
	return AddedThread{Id: p.str("id"), Title: p.str("title"), Owner: p.str("owner")}, nil
}

func ParseAddedComment(p Payload) (AddedComment, error) {
	if err := addedCommentShape.check(p); err != nil {
		return AddedComment{}, err
	}
	return AddedComment{Id: p.str("id"), Content: p.str("content"), Owner: p.str("owner")}, nil
}

func ParseAddedReply(p Payload) (AddedReply, error) {
	if err := addedReplyShape.check(p); err != nil {
		return AddedReply{}, err
	}
	return AddedReply{Id: p.str("id"), Content: p.str("content"), Owner: p.str("owner")}, nil
}

// ParseCommentRecord validates a detail-comment payload. "replies" must be a
// list; rows read from storage carry an empty one and the assembler attaches
// the real replies.
func ParseCommentRecord(p Payload) (CommentRecord, error) {
	if err := detailCommentShape.check(p); err != nil {
		return CommentRecord{}, err
	}
	return CommentRecord{
		Id:        p.str("id"),
		Username:  p.str("username"),
		Date:      p.timestamp("date"),
		Content:   p.str("content"),
		Tombstone: p.boolean("tombstone"),
	}, nil
}

func ParseReplyRecord(p Payload) (ReplyRecord, error) {
	if err := detailReplyShape.check(p); err != nil {
		return ReplyRecord{}, err
	}
	return ReplyRecord{
		Id:              p.str("id"),
		Content:         p.str("content"),
		Date:            p.timestamp("date"),
		Username:        p.str("username"),
		ParentCommentId: p.str("parentCommentId"),
		Tombstone:       p.boolean("tombstone"),
	}, nil
}
