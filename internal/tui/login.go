// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fit-keeper/internal/service"
	"github.com/MKhiriev/go-fit-keeper/models"
)

const (
	loginFieldLogin = iota
	loginFieldPassword
)

// LoginModel is the sign-in page. A successful login produces a
// [LoginResult] that [RootModel] turns into the signed-in session.
type LoginModel struct {
	inputForm

	ctx  context.Context
	auth service.ClientAuthService
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		inputForm: newInputForm(
			formField{label: "Логин", placeholder: "login", limit: 20},
			formField{label: "Пароль", placeholder: "password", limit: 256, secret: true},
		),
		ctx:  ctx,
		auth: auth,
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeAuthError(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.update(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.submitting = false
		m.errMsg = ""
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	case key.Matches(keyMsg, keys.tab):
		m.focusNext()
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.focusPrev()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.submitting {
			return m, nil
		}
		login, pass := m.value(loginFieldLogin), m.secret(loginFieldPassword)
		if login == "" || pass == "" {
			m.errMsg = "Логин и пароль обязательны"
			return m, nil
		}
		m.errMsg = ""
		m.submitting = true
		return m, m.cmdLogin(login, pass)
	}

	return m, m.update(msg)
}

func (m *LoginModel) View() string {
	return renderPage("ВХОД", m.view("Войти"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *LoginModel) cmdLogin(login, pass string) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		session, err := auth.Login(ctx, models.User{Login: login, Password: pass})
		return LoginResult{Err: err, Username: login, Session: session}
	}
}
