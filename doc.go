/*
Package anxiety finds drift between copies of the same passage of text that
is duplicated across several documents. Passages are marked in the documents
as named regions, called quotes. A quote is opened by a line starting with
the open directive and closed by a line starting with the close directive:

	% begin quote intro
	Some boilerplate text that is repeated in other
	documents of the project.
	% end quote intro

Directives are recognized after each line was normalized (by default all
runs of whitespace are squashed into one space) and regardless of letter
case. The name follows the directive. Characters from the set of ignored
characters, by default ":/|[]{}!", are removed from the name and the name is
lower-cased. I.e. the lines

	%   Begin Quote: [Intro]
	% begin quote intro

both open the quote 'intro'.

# Canonical Instances

The same quote name may occur many times in one or more files. One instance
of each name is the canonical one and all other instances are compared
against it. An instance becomes canonical when its open directive contains
the canonical marker '!':

	% begin quote! intro

Without a marker the first instance found is canonical.

# Overlapping Quotes

More than one quote can be open at the same time. Each content line is added
to the text of all open quotes. A close directive without a name closes the
only open quote. If more than one quote is open this is an error.

# Scanning and Comparing

A run has two phases. First all input lines of all files are fed through one
Scanner in order. Scanning stops at the first fatal error, e.g. opening a
quote that is already open. After scanning Compare renders a DiffBlock for
each instance that is not canonical.
*/
package anxiety
