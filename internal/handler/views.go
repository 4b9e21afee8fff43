package handler

import (
	"time"

	"github.com/google/uuid"

	"peerswipe/internal/model"
)

// UserView is what other users may learn about an account.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Pseudonym string    `json:"pseudonym"`
	IsAdmin   bool      `json:"isAdmin,omitempty"`
}

// AdminUserView is the admin listing of an account.
type AdminUserView struct {
	ID        uuid.UUID `json:"id"`
	Pseudonym string    `json:"pseudonym"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProblemSummary identifies a problem inside match and report listings.
type ProblemSummary struct {
	ID       uuid.UUID             `json:"id"`
	Title    string                `json:"title"`
	Category model.ProblemCategory `json:"category"`
	IsOpen   bool                  `json:"isOpen"`
}

// MatchView is a match with its participants' pseudonyms.
type MatchView struct {
	ID        uuid.UUID       `json:"id"`
	Problem   *ProblemSummary `json:"problem,omitempty"`
	ProblemID uuid.UUID       `json:"problemId"`
	Owner     UserView        `json:"owner"`
	Helper    UserView        `json:"helper"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// MessageView is a chat line.
type MessageView struct {
	ID        uuid.UUID `json:"id"`
	MatchID   uuid.UUID `json:"match"`
	Sender    UserView  `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessageSummary identifies a reported message.
type MessageSummary struct {
	ID      uuid.UUID `json:"id"`
	Content string    `json:"content"`
	Sender  *UserView `json:"sender,omitempty"`
}

// ReportView is a report as shown to admins.
type ReportView struct {
	ID             uuid.UUID          `json:"id"`
	Reporter       UserView           `json:"reporter"`
	TargetProblem  *ProblemSummary    `json:"targetProblem,omitempty"`
	TargetMessage  *MessageSummary    `json:"targetMessage,omitempty"`
	Reason         string             `json:"reason"`
	Status         model.ReportStatus `json:"status"`
	ResolutionNote string             `json:"resolutionNote,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

func userView(id uuid.UUID, u *model.User) UserView {
	v := UserView{ID: id}
	if u != nil {
		v.Pseudonym = u.Pseudonym
	}
	return v
}

func problemSummary(p *model.ProblemPost) *ProblemSummary {
	if p == nil {
		return nil
	}
	return &ProblemSummary{ID: p.ID, Title: p.Title, Category: p.Category, IsOpen: p.IsOpen}
}

func newMatchView(m *model.Match) MatchView {
	return MatchView{
		ID:        m.ID,
		Problem:   problemSummary(m.Problem),
		ProblemID: m.ProblemID,
		Owner:     userView(m.OwnerID, m.Owner),
		Helper:    userView(m.HelperID, m.Helper),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func matchViews(matches []model.Match) []MatchView {
	out := make([]MatchView, 0, len(matches))
	for i := range matches {
		out = append(out, newMatchView(&matches[i]))
	}
	return out
}

func newMessageView(m *model.Message) MessageView {
	return MessageView{
		ID:        m.ID,
		MatchID:   m.MatchID,
		Sender:    userView(m.SenderID, m.Sender),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func newReportView(r *model.Report) ReportView {
	v := ReportView{
		ID:             r.ID,
		Reporter:       userView(r.ReporterID, r.Reporter),
		TargetProblem:  problemSummary(r.TargetProblem),
		Reason:         r.Reason,
		Status:         r.Status,
		ResolutionNote: r.ResolutionNote,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if v.TargetProblem == nil && r.TargetProblemID != nil {
		v.TargetProblem = &ProblemSummary{ID: *r.TargetProblemID}
	}
	if r.TargetMessage != nil {
		v.TargetMessage = &MessageSummary{ID: r.TargetMessage.ID, Content: r.TargetMessage.Content}
		if r.TargetMessage.Sender != nil {
			sender := userView(r.TargetMessage.SenderID, r.TargetMessage.Sender)
			v.TargetMessage.Sender = &sender
		}
	} else if r.TargetMessageID != nil {
		v.TargetMessage = &MessageSummary{ID: *r.TargetMessageID}
	}
	return v
}
