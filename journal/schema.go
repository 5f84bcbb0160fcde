// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	direction TEXT NOT NULL,
	entry_time DATETIME NOT NULL,
	exit_time DATETIME,
	entry_price REAL NOT NULL,
	exit_price REAL,
	stop_loss REAL,
	take_profit REAL,
	lot REAL NOT NULL,
	pnl REAL,
	outcome TEXT NOT NULL,
	strategy TEXT NOT NULL DEFAULT '',
	setup TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS playbooks (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	strategy TEXT NOT NULL DEFAULT '',
	rules TEXT NOT NULL DEFAULT '',
	created DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
	day TEXT PRIMARY KEY,
	body TEXT NOT NULL,
	updated DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_entry_time ON trades(entry_time);
CREATE INDEX IF NOT EXISTS idx_trades_strategy ON trades(strategy);
`
