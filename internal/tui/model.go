package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"forgeyourday/internal/engine"
	"forgeyourday/internal/storage"
	"forgeyourday/internal/ui"
)

type feedModel struct {
	ctx      context.Context
	svc      *engine.Service
	username string
	now      func() time.Time

	width  int
	height int

	posts    []storage.Post
	selected int
	expanded map[string]bool

	commenting bool
	comment    string

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	posts []storage.Post
	err   error
}

type likedMsg struct {
	id  string
	err error
}

type commentedMsg struct {
	id  string
	err error
}

func newFeedModel(ctx context.Context, svc *engine.Service, username string, now func() time.Time) feedModel {
	return feedModel{
		ctx:      ctx,
		svc:      svc,
		username: username,
		now:      now,
		expanded: map[string]bool{},
		loading:  true,
		lastLog:  "Loaded.",
	}
}

func (m feedModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m feedModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		posts, err := m.svc.VisibleFeed(m.ctx, m.username, m.now())
		return loadedMsg{posts: posts, err: err}
	}
}

func (m feedModel) likeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return likedMsg{id: id, err: m.svc.ToggleLike(m.ctx, id, m.username)}
	}
}

func (m feedModel) commentCmd(id, text string) tea.Cmd {
	return func() tea.Msg {
		return commentedMsg{id: id, err: m.svc.AddComment(m.ctx, id, m.username, text)}
	}
}

func (m feedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.posts = msg.posts
		if m.selected >= len(m.posts) {
			m.selected = len(m.posts) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", m.now().Format("15:04:05"))
		return m, nil
	case likedMsg:
		if msg.err != nil {
			m.lastLog = "Like failed: " + msg.err.Error()
			return m, nil
		}
		return m, m.loadCmd()
	case commentedMsg:
		if msg.err != nil {
			m.lastLog = "Comment failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = "Comment posted."
		return m, m.loadCmd()
	case tea.KeyMsg:
		if m.commenting {
			return m.updateCommentInput(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.posts)-1 {
				m.selected++
			}
			return m, nil
		case "enter":
			if p := m.selectedPost(); p != nil {
				m.expanded[p.ID] = !m.expanded[p.ID]
			}
			return m, nil
		case "l", " ":
			if p := m.selectedPost(); p != nil {
				return m, m.likeCmd(p.ID)
			}
			return m, nil
		case "c":
			if m.selectedPost() != nil {
				m.commenting = true
				m.comment = ""
				m.lastLog = "Type a comment, enter to post, esc to cancel."
			}
			return m, nil
		}
	}
	return m, nil
}

func (m feedModel) updateCommentInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.commenting = false
		m.comment = ""
		m.lastLog = "Comment cancelled."
		return m, nil
	case "enter":
		p := m.selectedPost()
		text := strings.TrimSpace(m.comment)
		m.commenting = false
		m.comment = ""
		if p == nil || text == "" {
			m.lastLog = "Nothing to post."
			return m, nil
		}
		return m, m.commentCmd(p.ID, text)
	case "backspace":
		if len(m.comment) > 0 {
			r := []rune(m.comment)
			m.comment = string(r[:len(r)-1])
		}
		return m, nil
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.comment += string(msg.Runes)
			if msg.Type == tea.KeySpace {
				m.comment += " "
			}
		}
		return m, nil
	}
}

func (m feedModel) selectedPost() *storage.Post {
	if m.selected < 0 || m.selected >= len(m.posts) {
		return nil
	}
	return &m.posts[m.selected]
}

func (m feedModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading {
		return "ForgeYourDay — loading…\n"
	}

	var out []string
	out = append(out, ui.Heading(ui.IconForge, "Feed — "+m.username))
	out = append(out, "")

	if len(m.posts) == 0 {
		out = append(out, ui.Muted.Render("No completed tasks yet."))
	}
	now := m.now()
	for i, p := range m.posts {
		cursor := "  "
		line := fmt.Sprintf("%s %s — %s  %s %d  %s %d  %s",
			ui.IconDone, p.Author, p.Task,
			ui.IconHeart, len(p.LikedBy),
			ui.IconComment, len(p.Comments),
			ui.PostTime(p.CreatedAt, now))
		if i == m.selected {
			cursor = "> "
			line = ui.SelectedRow.Render(line)
		}
		out = append(out, cursor+line)
		if m.expanded[p.ID] {
			out = append(out, "    "+p.Description)
			for _, c := range p.Comments {
				author := c.Author
				if author == "" {
					author = "someone"
				}
				out = append(out, "    "+ui.Muted.Render(author+": "+c.Text))
			}
		}
	}

	out = append(out, "")
	if m.commenting {
		out = append(out, ui.Key.Render("Comment:")+" "+m.comment+"▌")
	} else {
		out = append(out, ui.Muted.Render("j/k: move · enter: expand · l/space: like · c: comment · r: refresh · q: quit"))
	}
	out = append(out, m.lastLog)
	return strings.Join(out, "\n") + "\n"
}
