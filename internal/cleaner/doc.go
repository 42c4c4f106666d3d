// Package cleaner implements the fixed cleaning passes for the two raw
// survey datasets and the missing-value resolution engine they share.
//
// Each pass mirrors the hypotheses under study: columns irrelevant to
// motivation, productivity and work setting are dropped, rows outside
// the studied population are filtered out, and categorical labels are
// standardized (remote frequency percentages become Remote/Hybrid/Onsite,
// 1-5 ratings gain Low/Medium/High grade columns).
//
// Missing values are resolved by a policy fixed per column kind: numeric
// columns take the column mean, categorical columns the mode, and rows
// missing a grouping column are dropped. After cleaning, no column
// retains a missing-value sentinel and the row count never exceeds the
// raw dataset's; VerifyClean enforces both invariants.
package cleaner
