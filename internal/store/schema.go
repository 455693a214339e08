package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS drafts (
    goal_id        INTEGER PRIMARY KEY,
    name           TEXT NOT NULL DEFAULT '',
    amount         TEXT NOT NULL DEFAULT '',
    start_date     TEXT NOT NULL DEFAULT '',
    end_date       TEXT NOT NULL DEFAULT '',
    category       TEXT NOT NULL DEFAULT '',
    account_id     TEXT NOT NULL DEFAULT '',
    icon           TEXT NOT NULL DEFAULT '',
    image          TEXT NOT NULL DEFAULT '',
    selected_date  TEXT NOT NULL DEFAULT '',
    saved_at       TEXT NOT NULL
);
`
