package sqlite

// schema contains the database schema DDL. It is safe to run on every open.
const schema = `
CREATE TABLE IF NOT EXISTS bmi (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT NOT NULL,
    weight REAL NOT NULL,
    height REAL NOT NULL,
    bmi REAL NOT NULL
);
`
