// Package tui is the full-screen client shell. It renders exactly one of
// four areas — loading, sign-in, member, coach — and the only thing that may
// switch between them is the route guard observing session state.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	fitpair "github.com/fitpair/fitpair"
	"github.com/fitpair/fitpair/dictionary"
	"github.com/fitpair/fitpair/forms"
)

type snapshotMsg fitpair.Snapshot

type loginDoneMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

// App is the root model. Screen transitions happen only in the snapshotMsg
// handler, through the guard — key handlers start flows, they never navigate.
type App struct {
	client  *fitpair.Client
	guard   *fitpair.Guard
	screen  fitpair.Destination
	snap    fitpair.Snapshot
	updates <-chan fitpair.Snapshot
	cancel  func()

	spin     spinner.Model
	email    textinput.Model
	password textinput.Model
	focus    int
	formErr  string
	notice   string
	busy     bool

	width int
}

// New creates the shell for a built client. Bootstrap runs from Init.
func New(client *fitpair.Client) *App {
	email := textinput.New()
	email.Placeholder = "name@example.com"
	email.Prompt = "Email    > "
	email.CharLimit = 254
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "Password > "
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = styleSpinner

	updates, cancel := client.Subscribe()

	return &App{
		client:   client,
		guard:    fitpair.NewGuard(),
		screen:   fitpair.DestLoading,
		updates:  updates,
		cancel:   cancel,
		spin:     sp,
		email:    email,
		password: password,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spin.Tick, a.bootstrap(), a.nextSnapshot())
}

func (a *App) bootstrap() tea.Cmd {
	return func() tea.Msg {
		snap, err := a.client.Bootstrap(context.Background())
		if err != nil && !errors.Is(err, fitpair.ErrBootstrapRan) {
			snap = a.client.Current()
		}
		return snapshotMsg(snap)
	}
}

func (a *App) nextSnapshot() tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-a.updates
		if !ok {
			return nil
		}
		return snapshotMsg(snap)
	}
}

func (a *App) login(email, password string) tea.Cmd {
	return func() tea.Msg {
		_, err := a.client.Login(context.Background(), email, password)
		return loginDoneMsg{err: err}
	}
}

func (a *App) logout() tea.Cmd {
	return func() tea.Msg {
		return logoutDoneMsg{err: a.client.Logout(context.Background())}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case snapshotMsg:
		a.snap = fitpair.Snapshot(msg)
		if dest := a.guard.Observe(a.snap); dest != fitpair.DestStay {
			a.screen = dest
			a.formErr = ""
			if dest == fitpair.DestSignIn {
				a.password.SetValue("")
				a.focus = 0
				a.email.Focus()
				a.password.Blur()
			}
		}
		return a, a.nextSnapshot()

	case loginDoneMsg:
		a.busy = false
		if msg.err != nil {
			switch {
			case errors.Is(msg.err, fitpair.ErrSessionNotPersisted):
				// Signed in; the guard will move us. Flag the durability gap.
				a.notice = "Signed in, but the session could not be saved for next time."
			case errors.Is(msg.err, fitpair.ErrAuthUnavailable):
				a.formErr = "Cannot reach the server. Check your connection and try again."
			default:
				a.formErr = msg.err.Error()
			}
		}
		return a, nil

	case logoutDoneMsg:
		a.busy = false
		if msg.err != nil {
			a.notice = "Signed out, but the stored session may not be fully cleared."
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		a.cancel()
		return a, tea.Quit
	}

	switch a.screen {
	case fitpair.DestSignIn:
		return a.handleSignInKey(msg)

	case fitpair.DestMemberArea, fitpair.DestCoachArea:
		switch msg.String() {
		case "q":
			a.cancel()
			return a, tea.Quit
		case "l":
			if !a.busy {
				a.busy = true
				a.notice = ""
				return a, tea.Batch(a.spin.Tick, a.logout())
			}
		}
	}

	return a, nil
}

func (a *App) handleSignInKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.busy {
		return a, nil
	}

	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		a.focus = 1 - a.focus
		if a.focus == 0 {
			a.email.Focus()
			a.password.Blur()
		} else {
			a.password.Focus()
			a.email.Blur()
		}
		return a, nil

	case "enter":
		if a.focus == 0 {
			a.focus = 1
			a.email.Blur()
			a.password.Focus()
			return a, nil
		}

		email := strings.TrimSpace(a.email.Value())
		password := a.password.Value()
		if result := forms.ValidateCredentials(email, password); !result.Valid {
			for _, field := range []string{"email", "password"} {
				if msg, ok := result.Errors[field]; ok {
					a.formErr = msg
					break
				}
			}
			return a, nil
		}

		a.busy = true
		a.formErr = ""
		a.notice = ""
		return a, tea.Batch(a.spin.Tick, a.login(email, password))
	}

	var cmd tea.Cmd
	if a.focus == 0 {
		a.email, cmd = a.email.Update(msg)
	} else {
		a.password, cmd = a.password.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	var body string
	switch a.screen {
	case fitpair.DestLoading:
		body = a.viewLoading()
	case fitpair.DestSignIn:
		body = a.viewSignIn()
	case fitpair.DestMemberArea:
		body = a.viewMemberArea()
	case fitpair.DestCoachArea:
		body = a.viewCoachArea()
	}

	return styleTitle.Render("fitpair") + "\n" + stylePanel.Render(body) + "\n"
}

func (a *App) viewLoading() string {
	return a.spin.View() + " Restoring your session…"
}

func (a *App) viewSignIn() string {
	var b strings.Builder
	b.WriteString("Sign in\n\n")
	b.WriteString(a.email.View())
	b.WriteString("\n")
	b.WriteString(a.password.View())
	b.WriteString("\n\n")

	switch {
	case a.busy:
		b.WriteString(a.spin.View() + " Signing in…")
	case a.formErr != "":
		b.WriteString(styleError.Render(a.formErr))
	default:
		b.WriteString(styleMuted.Render("enter to submit · tab to switch fields · ctrl+c to quit"))
	}
	return b.String()
}

func (a *App) viewMemberArea() string {
	name := a.snap.Name
	if name == "" {
		name = a.snap.Email
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Member area — welcome back, %s\n\n", name)
	b.WriteString("Today's plan\n")
	for _, item := range []struct {
		exercise string
		bodyPart string
		gear     string
	}{
		{"Goblet squat", "upper legs", "kettlebell"},
		{"Bench press", "chest", "barbell"},
		{"Dead bug", "waist", "body weight"},
	} {
		fmt.Fprintf(&b, "  • %s — %s, %s\n",
			item.exercise,
			dictionary.BodyPart(item.bodyPart),
			dictionary.Equipment(item.gear),
		)
	}

	b.WriteString("\n")
	if a.notice != "" {
		b.WriteString(styleOK.Render(a.notice) + "\n")
	}
	if a.busy {
		b.WriteString(a.spin.View() + " Signing out…")
	} else {
		b.WriteString(styleMuted.Render("l to sign out · q to quit"))
	}
	return b.String()
}

func (a *App) viewCoachArea() string {
	name := a.snap.Name
	if name == "" {
		name = a.snap.Email
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Coach area — %s\n\n", name)
	b.WriteString("Your students check in here. Program focus this week:\n")
	for _, muscle := range []string{"glutes", "lats", "delts"} {
		fmt.Fprintf(&b, "  • %s\n", dictionary.TargetMuscle(muscle))
	}

	b.WriteString("\n")
	if a.notice != "" {
		b.WriteString(styleOK.Render(a.notice) + "\n")
	}
	if a.busy {
		b.WriteString(a.spin.View() + " Signing out…")
	} else {
		b.WriteString(styleMuted.Render("l to sign out · q to quit"))
	}
	return b.String()
}
