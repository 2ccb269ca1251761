package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const noticeTTL = 3 * time.Second

const consoleHotKeys = "s: синхронизация  p: отправить  r: регистрация  c: копировать id  i: о программе  q: выход"

type consoleModel struct {
	ctx           context.Context
	syncService   service.ClientSyncService
	deviceService service.ClientDeviceService

	userID    int64
	device    models.DeviceInfo
	buildInfo models.AppBuildInfo

	status     models.SyncVersion
	lastResult models.SyncResult
	busy       syncModel
	notice     string
	overlay    *errorOverlayModel
	showInfo   bool

	copyText func(string) error
}

func newConsoleModel(
	ctx context.Context,
	syncService service.ClientSyncService,
	deviceService service.ClientDeviceService,
	userID int64,
	device models.DeviceInfo,
	buildInfo models.AppBuildInfo,
) consoleModel {
	return consoleModel{
		ctx:           ctx,
		syncService:   syncService,
		deviceService: deviceService,
		userID:        userID,
		device:        device,
		buildInfo:     buildInfo,
		busy:          newSyncModel(),
		copyText:      clipboard.WriteAll,
	}
}

func (m consoleModel) Init() tea.Cmd {
	return m.cmdLoadStatus()
}

func (m consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusLoadedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeSyncError(msg.err)}
			return m, nil
		}
		m.status = msg.status
		return m, nil
	case syncDoneMsg:
		m.busy.running = false
		m.lastResult = msg.result
		return m, m.cmdLoadStatus()
	case deviceRegisteredMsg:
		m.busy.running = false
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeSyncError(msg.err)}
			return m, nil
		}
		return m.withNotice("Устройство зарегистрировано: "+msg.deviceID, m.cmdLoadStatus())
	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	case spinner.TickMsg:
		if !m.busy.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.busy.spinner, cmd = m.busy.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m consoleModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.showInfo {
		if key.Matches(msg, keys.esc) {
			m.showInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.info):
		m.showInfo = true
		return m, nil
	case key.Matches(msg, keys.copy):
		return m.copyDeviceID()
	}

	// one action at a time; the engine would queue it anyway
	if m.busy.running {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.sync):
		return m.start("Синхронизация...", m.cmdSync())
	case key.Matches(msg, keys.pushOnly):
		return m.start("Отправка изменений...", m.cmdPushOnly())
	case key.Matches(msg, keys.register):
		return m.start("Регистрация устройства...", m.cmdRegisterDevice())
	}

	return m, nil
}

func (m consoleModel) start(label string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.busy.running = true
	m.busy.label = label
	return m, tea.Batch(m.busy.spinner.Tick, cmd)
}

func (m consoleModel) copyDeviceID() (tea.Model, tea.Cmd) {
	if !m.status.HasDevice() {
		m.overlay = &errorOverlayModel{message: humanizeSyncError(errDeviceNotRegistered)}
		return m, nil
	}

	if err := m.copyText(*m.status.DeviceID); err != nil {
		m.overlay = &errorOverlayModel{message: fmt.Sprintf("Ошибка копирования: %v", err)}
		return m, nil
	}

	return m.withNotice("Скопировано", nil)
}

func (m consoleModel) withNotice(text string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.notice = text
	clearCmd := tea.Tick(noticeTTL, func(time.Time) tea.Msg { return clearNoticeMsg{} })
	if cmd == nil {
		return m, clearCmd
	}
	return m, tea.Batch(cmd, clearCmd)
}

func (m consoleModel) View() string {
	if m.overlay != nil {
		return appStyle.Render(m.overlay.View())
	}
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Пользователь: %d\n", m.userID)
	fmt.Fprintf(&b, "Устройство: %s\n", valueOrDash(m.status.DeviceID))
	fmt.Fprintf(&b, "Версия сервера: %d\n", m.status.ServerVersion)
	fmt.Fprintf(&b, "Последняя отправка: %s\n", formatMillis(m.status.LastPushAt))
	fmt.Fprintf(&b, "Последнее получение: %s\n", formatMillis(m.status.LastPullAt))
	fmt.Fprintf(&b, "Полная загрузка: %s\n", formatMillis(m.status.LastFullPullAt))
	b.WriteString("\n")
	b.WriteString("Результат: ")
	b.WriteString(describeResult(m.lastResult))

	if m.busy.running {
		b.WriteString("\n\n")
		b.WriteString(m.busy.View())
	}
	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(m.notice)
	}

	return appStyle.Render(renderPage("СИНХРОНИЗАЦИЯ ПРОГРЕССА", b.String(), consoleHotKeys))
}

func describeResult(result models.SyncResult) string {
	switch r := result.(type) {
	case models.SyncSuccess:
		return successStyle.Render(fmt.Sprintf("успешно, отправлено %d, получено %d, версия %d", r.Pushed, r.Pulled, r.NewVersion))
	case models.SyncError:
		return errorStyle.Render("ошибка: " + humanizeSyncError(r.Err))
	case models.SyncNotLoggedIn:
		return humanizeSyncError(service.ErrNotLoggedIn)
	default:
		return "-"
	}
}

func (m consoleModel) cmdLoadStatus() tea.Cmd {
	ctx, svc, userID := m.ctx, m.syncService, m.userID

	return func() tea.Msg {
		status, err := svc.Status(ctx, userID)
		return statusLoadedMsg{status: status, err: err}
	}
}

func (m consoleModel) cmdSync() tea.Cmd {
	ctx, svc, userID := m.ctx, m.syncService, m.userID

	return func() tea.Msg {
		return syncDoneMsg{result: svc.Sync(ctx, userID, models.TriggerManual)}
	}
}

func (m consoleModel) cmdPushOnly() tea.Cmd {
	ctx, svc, userID := m.ctx, m.syncService, m.userID

	return func() tea.Msg {
		return syncDoneMsg{result: svc.PushOnly(ctx, userID)}
	}
}

func (m consoleModel) cmdRegisterDevice() tea.Cmd {
	ctx, svc, userID, device := m.ctx, m.deviceService, m.userID, m.device

	return func() tea.Msg {
		deviceID, err := svc.RegisterDevice(ctx, userID, device)
		return deviceRegisteredMsg{deviceID: deviceID, err: err}
	}
}
