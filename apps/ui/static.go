package ui

// Stylesheet is the console's stylesheet, served at StylesheetPath.
const Stylesheet = `
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, sans-serif; color: #0f172a; background: #f8fafc; }
a { color: inherit; }
.muted { color: #64748b; font-size: 0.875rem; }
.error { color: #b91c1c; }
.btn { display: inline-block; padding: 6px 12px; border: 1px solid #cbd5e1; border-radius: 6px; background: #fff; cursor: pointer; text-decoration: none; }
.btn-sm { padding: 3px 8px; font-size: 0.8rem; }
.btn-primary { background: #0f172a; color: #fff; }
.btn-danger { color: #b91c1c; }
.btn.disabled { opacity: 0.4; cursor: default; }
.app-shell { display: flex; min-height: 100vh; }
.app-sidebar { width: 240px; padding: 20px; background: #fff; border-right: 1px solid #e2e8f0; }
.app-nav { display: flex; flex-direction: column; gap: 4px; }
.nav-link { padding: 8px 10px; border-radius: 6px; text-decoration: none; }
.nav-link.active { background: #f1f5f9; font-weight: 600; }
.app-main { flex: 1; padding: 24px; }
.topbar { display: flex; justify-content: space-between; align-items: center; }
.card { background: #fff; border: 1px solid #e2e8f0; border-radius: 8px; padding: 16px; margin-bottom: 16px; }
.stats { display: flex; flex-wrap: wrap; gap: 16px; }
.stat { flex: 1; min-width: 160px; }
.stat-value { font-size: 1.5rem; }
.table-search { display: flex; gap: 8px; margin-bottom: 12px; }
.data-table { width: 100%; border-collapse: collapse; }
.data-table th, .data-table td { padding: 8px; border-bottom: 1px solid #e2e8f0; text-align: left; }
.data-table th.sortable a { text-decoration: none; }
.placeholder { text-align: center; color: #64748b; padding: 32px; }
.actions form.inline { display: inline; }
.badge { padding: 2px 8px; border-radius: 9999px; font-size: 0.75rem; border: 1px solid transparent; }
.badge-default { background: #0f172a; color: #fff; }
.badge-secondary { background: #f1f5f9; }
.badge-outline { border-color: #cbd5e1; }
.badge-destructive { background: #dc2626; color: #fff; }
.tone-positive { color: #16a34a; }
.tone-negative { color: #dc2626; }
.progress { display: flex; align-items: center; gap: 8px; }
.progress-track { width: 80px; height: 6px; background: #e2e8f0; border-radius: 3px; }
.progress-bar { height: 6px; background: #0f172a; border-radius: 3px; }
.table-footer { display: flex; justify-content: space-between; align-items: center; margin-top: 12px; }
.pager { display: flex; gap: 4px; align-items: center; }
.login-body { display: flex; justify-content: center; padding-top: 10vh; }
.login-wrap { width: 320px; }
.login-form { display: flex; flex-direction: column; gap: 8px; }
.details dt { font-weight: 600; }
.details dd { margin: 0 0 8px 0; }
`
