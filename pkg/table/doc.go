/*
Package table renders the rows of a structured table as trees of structural
nodes, including the expandable detail row that can hang off each record.

# Rows

A Renderer turns one record into a fragment: the base row (one cell per
flattened column) followed, when the row is row-expandable and has ever been
expanded, by a detail row spanning every column.

	r := table.Renderer{
	    Table: table.TableContext{PrefixCls: "gridkit", FixedInfoList: table.FixedInfoList(cols)},
	    Body: table.BodyContext{
	        FlattenColumns:    cols,
	        ExpandableType:    table.ExpandableRow,
	        IndentSize:        2,
	        ExpandIcon:        table.DefaultExpandIcon,
	        ExpandedRowRender: renderDetail,
	    },
	    Latches: latches,
	}
	node := r.RenderRow(table.RowProps{Record: rec, RowKey: "1", ExpandedKeys: expanded})

# Detail latch

Detail content is never built before a row is first expanded. Once built it
stays mounted while the row lives, and collapsing only hides it. The
LatchStore keeps that per-row flag, keyed by row key; the owner of the store
calls Commit after each render pass and Retain when rows leave the table.
Body does both for a whole record list.

# Presentation

Nodes carry class names, attributes and text only. Package display turns them
into terminal lines.
*/
package table
