// journal/schema.go
package journal

// Schema creates the single trades table. Prices and fees are kept as decimal
// text so they round-trip exactly; dates are ISO-8601 (YYYY-MM-DD) text so
// they sort lexically.
const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	symbol TEXT NOT NULL,
	trade_type TEXT NOT NULL,
	action TEXT NOT NULL,
	price TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	date TEXT NOT NULL,
	fees TEXT NOT NULL,
	comment TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(date);
`
