package textcomponent

// Actions is the capability the interpreter binds click actions to.
type Actions interface {
	OpenURL(url string)
	RunCommand(command string)
	SuggestCommand(command string)
	ChangePage(page int)
	CopyToClipboard(text string)
}

// ActionFuncs adapts optional callbacks to Actions. A nil callback is a no-op.
type ActionFuncs struct {
	OnOpenURL        func(url string)
	OnCommandRun     func(command string)
	OnCommandSuggest func(command string)
	OnChangePage     func(page int)
	OnCopy           func(text string)
}

func (a ActionFuncs) OpenURL(url string) {
	if a.OnOpenURL != nil {
		a.OnOpenURL(url)
	}
}

func (a ActionFuncs) RunCommand(command string) {
	if a.OnCommandRun != nil {
		a.OnCommandRun(command)
	}
}

func (a ActionFuncs) SuggestCommand(command string) {
	if a.OnCommandSuggest != nil {
		a.OnCommandSuggest(command)
	}
}

func (a ActionFuncs) ChangePage(page int) {
	if a.OnChangePage != nil {
		a.OnChangePage(page)
	}
}

func (a ActionFuncs) CopyToClipboard(text string) {
	if a.OnCopy != nil {
		a.OnCopy(text)
	}
}
