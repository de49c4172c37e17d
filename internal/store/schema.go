package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS evaluations (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    evaluated_at         TEXT NOT NULL,
    item                 TEXT,
    price                REAL NOT NULL,
    category             TEXT NOT NULL,
    mode                 TEXT NOT NULL,
    uses                 INTEGER NOT NULL,
    uses_estimated       INTEGER NOT NULL DEFAULT 0,
    original_price       REAL,
    discount_percent     REAL,
    income               TEXT,
    budget_percent       INTEGER,
    base_score           INTEGER NOT NULL,
    category_bonus       INTEGER NOT NULL,
    score                INTEGER NOT NULL,
    verdict              TEXT NOT NULL,
    stamp                TEXT NOT NULL,
    justification        TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_evaluations_at ON evaluations(evaluated_at);
CREATE INDEX IF NOT EXISTS idx_evaluations_category ON evaluations(category);
`
