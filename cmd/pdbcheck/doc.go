// 14 Oct 2026

/*

Pdbcheck reads files in the old fixed column PDB format and says what
is wrong with them.
Usage:
	pdbcheck [flags] file_or_directory...

Directories are searched for files whose names look like PDB files
(.pdb, .ent, optionally .gz). A file called "-" is standard input.

For each file there is one line of output with the number of records,
models, warnings and refused records. Warnings themselves go to the
log.

Flags:
	-w, --workers n
		number of files to read at once (default: number of CPUs)
	-o, --out dir
		write each entry again into dir, with a freshly counted MASTER.
		Files keep their base name; when two inputs share one, later
		ones get .2, .3 ... before the extension. Standard input is
		written as stdin.pdb.
	-p, --preserve-order
		when writing, keep records in the order read instead of the
		order the format wants
	-s, --strict
		exit with failure if any record had to be left out
	-l, --log dest
		where warnings go: "" for nowhere, stdout, stderr or a file
	--broken prob
		make reads fail with this probability, for testing
	--config file
		read any of the above from a file (yaml, toml, json ...)

Every flag can also be set in the environment as PDBCHECK_ and the
flag name in capitals, with "_" for "-", so PDBCHECK_WORKERS=4.

Exit status is 0 if all went well, 1 if a file could not be read (or
with --strict had refused records) and 2 for usage errors.

*/
package main
