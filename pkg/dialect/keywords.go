package dialect

// ansiReservedKeywords are the words the ansi dialect refuses to treat as
// identifiers. Derived dialects move words in and out of this list.
var ansiReservedKeywords = []string{
	"ALL",
	"AND",
	"ANY",
	"AS",
	"ASC",
	"BETWEEN",
	"BOTH",
	"BY",
	"CASE",
	"CAST",
	"CHECK",
	"COLLATE",
	"COLUMN",
	"CONSTRAINT",
	"CREATE",
	"CROSS",
	"CURRENT_DATE",
	"CURRENT_TIME",
	"CURRENT_TIMESTAMP",
	"CURRENT_USER",
	"DEFAULT",
	"DELETE",
	"DESC",
	"DISTINCT",
	"DROP",
	"ELSE",
	"END",
	"EXCEPT",
	"EXISTS",
	"FALSE",
	"FOR",
	"FOREIGN",
	"FROM",
	"FULL",
	"GRANT",
	"GROUP",
	"HAVING",
	"IN",
	"INNER",
	"INSERT",
	"INTERSECT",
	"INTO",
	"IS",
	"JOIN",
	"LEADING",
	"LEFT",
	"LIKE",
	"NATURAL",
	"NOT",
	"NULL",
	"ON",
	"OR",
	"ORDER",
	"OUTER",
	"OVERLAPS",
	"PRIMARY",
	"REFERENCES",
	"RIGHT",
	"SELECT",
	"SESSION_USER",
	"SET",
	"SOME",
	"TABLE",
	"THEN",
	"TO",
	"TRAILING",
	"TRUE",
	"UNION",
	"UNIQUE",
	"UPDATE",
	"USING",
	"VALUES",
	"WHEN",
	"WHERE",
	"WITH",
}

// ansiUnreservedKeywords are words the dialect knows as keywords but still
// accepts as identifiers. Capitalisation policy applies to these too.
var ansiUnreservedKeywords = []string{
	"BEGIN",
	"CASCADE",
	"COMMIT",
	"DATE",
	"DAY",
	"FIRST",
	"HOUR",
	"IF",
	"INTERVAL",
	"KEY",
	"LAST",
	"LIMIT",
	"MINUTE",
	"MONTH",
	"NULLS",
	"OFFSET",
	"RECURSIVE",
	"REPLACE",
	"RESTRICT",
	"ROLLBACK",
	"SECOND",
	"START",
	"TEMP",
	"TEMPORARY",
	"TIME",
	"TIMESTAMP",
	"TRANSACTION",
	"VALUE",
	"VIEW",
	"WORK",
	"YEAR",
	"ZONE",
}
