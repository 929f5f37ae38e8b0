package icons

// The data-icon attribute on each root element lets callers count rendered glyphs.
var glyphs = map[ID]string{
	Logo: `<div class="logo-mark" data-icon="logo">` +
		`<svg width="20" height="14" viewBox="0 0 20 14" fill="none" xmlns="http://www.w3.org/2000/svg">` +
		`<path d="M2.144 0.463998L0 13.252L6.016 13.204L7.096 7.492L9.88 13.156L12.928 2.236L14.936 13.156L20 13.06L17.856 0.315998L13.96 0.363998L11.512 9.556L8.872 0.411998L2.144 0.463998Z" fill="#1E293B"/>` +
		`</svg></div>`,
	Bell: `<svg class="icon-bell" data-icon="bell" xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke="currentColor">` +
		`<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M15 17h5l-1.405-1.405A2.032 2.032 0 0118 14.158V11a6.002 6.002 0 00-4-5.659V5a2 2 0 10-4 0v.341C7.67 6.165 6 8.388 6 11v3.159c0 .538-.214 1.055-.595 1.436L4 17h5m6 0v1a3 3 0 11-6 0v-1m6 0H9"/>` +
		`</svg>`,
	CheckComplete: `<svg class="icon-check" data-icon="check-complete" viewBox="0 0 24 24" fill="none" xmlns="http://www.w3.org/2000/svg">` +
		`<circle cx="12" cy="12" r="12" fill="#2DD4BF"/>` +
		`<path d="M17.2738 8.52628L10.3798 15.4203L7.22754 12.268" stroke="white" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"/>` +
		`</svg>`,
	CheckIncomplete: `<svg class="icon-check" data-icon="check-incomplete" viewBox="0 0 24 24" fill="none" xmlns="http://www.w3.org/2000/svg">` +
		`<circle cx="12" cy="12" r="11.5" fill="white" stroke="#E5E7EB"/>` +
		`<path d="M17.2738 8.52628L10.3798 15.4203L7.22754 12.268" stroke="#D1D5DB" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"/>` +
		`</svg>`,
}
