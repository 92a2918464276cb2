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
	registerFieldName = iota
	registerFieldLogin
	registerFieldPassword
	registerFieldRepeat
)

// RegisterModel is the account creation page. A registered account is
// signed in right away: [RootModel] handles the [RegisterResult].
type RegisterModel struct {
	inputForm

	ctx  context.Context
	auth service.ClientAuthService
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		inputForm: newInputForm(
			formField{label: "Имя", placeholder: "name", limit: 64},
			formField{label: "Логин", placeholder: "login", limit: 20},
			formField{label: "Пароль", placeholder: "password", limit: 256, secret: true},
			formField{label: "Повтор пароля", placeholder: "repeat password", limit: 256, secret: true},
		),
		ctx:  ctx,
		auth: auth,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeAuthError(result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.reset()
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
		return m.submit()
	}

	return m, m.update(msg)
}

func (m *RegisterModel) submit() (tea.Model, tea.Cmd) {
	name := m.value(registerFieldName)
	login := m.value(registerFieldLogin)
	pass := m.secret(registerFieldPassword)
	repeat := m.secret(registerFieldRepeat)

	switch {
	case name == "" || login == "" || pass == "" || repeat == "":
		m.errMsg = "Все поля обязательны"
		return m, nil
	case pass != repeat:
		m.errMsg = "Пароли не совпадают"
		return m, nil
	}

	m.errMsg = ""
	m.submitting = true
	return m, m.cmdRegister(name, login, pass)
}

func (m *RegisterModel) View() string {
	return renderPage("РЕГИСТРАЦИЯ", m.view("Зарегистрироваться"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *RegisterModel) cmdRegister(name, login, pass string) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		session, err := auth.Register(ctx, models.User{Name: name, Login: login, Password: pass})
		return RegisterResult{Err: err, Username: login, Session: session}
	}
}
