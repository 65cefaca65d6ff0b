// Package frame holds the columnar table used as the output shape of every
// tabular ticker operation.
//
// A Table is an ordered set of named, typed, equally long columns. Every
// column carries a validity mask, so any column can hold nulls. Tables are
// built either column by column (New) or from a row collection through a
// declared Schema, which is also how collections expose their own canonical
// projection (Framer).
package frame
