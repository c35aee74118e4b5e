package journal

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id              TEXT PRIMARY KEY,
    started_at      TEXT NOT NULL,
    finished_at     TEXT NOT NULL,
    files_processed INTEGER NOT NULL,
    files_skipped   INTEGER NOT NULL,
    lines           INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS run_files (
    run_id   TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    filename TEXT NOT NULL,
    scenes   INTEGER NOT NULL,
    lines    INTEGER NOT NULL,
    selects  INTEGER NOT NULL,
    status   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_run_files_run_id ON run_files(run_id);
`
