package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    key         TEXT PRIMARY KEY,
    payload     TEXT NOT NULL,
    updated_at  TEXT NOT NULL
);
`

// Fixed snapshot keys, one per collection.
const (
	keyTransactions = "transactions"
	keyGoals        = "goals"
	keyCommitments  = "commitments"
)
