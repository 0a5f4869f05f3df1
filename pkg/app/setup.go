package app

// setupEventBus registers the event handlers of the application.
func (a *App) setupEventBus() {
	if a.Deps.EventBus == nil || a.Deps.Sender == nil {
		a.Deps.Logger.Warn("notifications disabled: no event bus or sender configured")
		return
	}
	a.NotificationService.Register(a.Deps.EventBus)
}
