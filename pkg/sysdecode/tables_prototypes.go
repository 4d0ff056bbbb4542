package sysdecode

// nameToPrototype is the declarative name→prototype table: for each
// syscall name, its ordered (type, parameter-name) list in call order.
// Parameter names "filename", "pathname", "oldname" and "newname" are the
// dereference hints a STRING-kind classification keys on (see
// pkg/syscallrecord); everything else is classified purely from whether
// its type string carries a pointer marker ("*").
//
// Coverage here favors the syscalls exercised by the engine's own test
// scenarios and common tracing workloads — it is not the full ~300-entry
// kernel surface, consistent with PrototypeOf's documented fallback (a
// single ("?", "?") entry) for anything absent.
var nameToPrototype = map[string][]Prototype{
	"read":    {{"unsigned int", "fd"}, {"char *", "buf"}, {"size_t", "count"}},
	"write":   {{"unsigned int", "fd"}, {"const char *", "buf"}, {"size_t", "count"}},
	"open":    {{"const char *", "filename"}, {"int", "flags"}, {"umode_t", "mode"}},
	"close":   {{"unsigned int", "fd"}},
	"stat":    {{"const char *", "filename"}, {"struct stat *", "statbuf"}},
	"fstat":   {{"unsigned int", "fd"}, {"struct stat *", "statbuf"}},
	"lstat":   {{"const char *", "filename"}, {"struct stat *", "statbuf"}},
	"lseek":   {{"unsigned int", "fd"}, {"off_t", "offset"}, {"unsigned int", "whence"}},
	"mmap":    {{"unsigned long", "addr"}, {"unsigned long", "len"}, {"unsigned long", "prot"}, {"unsigned long", "flags"}, {"unsigned long", "fd"}, {"unsigned long", "off"}},
	"mprotect": {{"unsigned long", "start"}, {"size_t", "len"}, {"unsigned long", "prot"}},
	"munmap":  {{"unsigned long", "addr"}, {"size_t", "len"}},
	"brk":     {{"unsigned long", "brk"}},
	"rt_sigaction": {{"int", "sig"}, {"const struct sigaction *", "act"}, {"struct sigaction *", "oact"}, {"size_t", "sigsetsize"}},
	"ioctl":   {{"unsigned int", "fd"}, {"unsigned int", "cmd"}, {"unsigned long", "arg"}},
	"access":  {{"const char *", "filename"}, {"int", "mode"}},
	"pipe":    {{"int *", "fildes"}},
	"pipe2":   {{"int *", "fildes"}, {"int", "flags"}},
	"dup":     {{"unsigned int", "fildes"}},
	"dup2":    {{"unsigned int", "oldfd"}, {"unsigned int", "newfd"}},
	"dup3":    {{"unsigned int", "oldfd"}, {"unsigned int", "newfd"}, {"int", "flags"}},
	"getpid":  {},
	"getppid": {},
	"gettid":  {},
	"socket":  {{"int", "family"}, {"int", "type"}, {"int", "protocol"}},
	"connect": {{"int", "fd"}, {"struct sockaddr *", "uservaddr"}, {"int", "addrlen"}},
	"accept":  {{"int", "fd"}, {"struct sockaddr *", "upeer_sockaddr"}, {"int *", "upeer_addrlen"}},
	"accept4": {{"int", "fd"}, {"struct sockaddr *", "upeer_sockaddr"}, {"int *", "upeer_addrlen"}, {"int", "flags"}},
	"bind":    {{"int", "fd"}, {"struct sockaddr *", "umyaddr"}, {"int", "addrlen"}},
	"listen":  {{"int", "fd"}, {"int", "backlog"}},
	"sendto":  {{"int", "fd"}, {"void *", "buff"}, {"size_t", "len"}, {"unsigned int", "flags"}, {"struct sockaddr *", "addr"}, {"int", "addr_len"}},
	"recvfrom": {{"int", "fd"}, {"void *", "ubuf"}, {"size_t", "size"}, {"unsigned int", "flags"}, {"struct sockaddr *", "addr"}, {"int *", "addr_len"}},
	"clone":   {{"unsigned long", "clone_flags"}, {"unsigned long", "newsp"}, {"int *", "parent_tidptr"}, {"int *", "child_tidptr"}, {"unsigned long", "tls"}},
	"fork":    {},
	"vfork":   {},
	"execve":  {{"const char *", "filename"}, {"const char *const *", "argv"}, {"const char *const *", "envp"}},
	"execveat": {{"int", "dfd"}, {"const char *", "filename"}, {"const char *const *", "argv"}, {"const char *const *", "envp"}, {"int", "flags"}},
	"exit":       {{"int", "error_code"}},
	"exit_group": {{"int", "error_code"}},
	"wait4":   {{"pid_t", "upid"}, {"int *", "stat_addr"}, {"int", "options"}, {"struct rusage *", "ru"}},
	"waitid":  {{"int", "which"}, {"pid_t", "upid"}, {"siginfo_t *", "infop"}, {"int", "options"}, {"struct rusage *", "ru"}},
	"kill":    {{"pid_t", "pid"}, {"int", "sig"}},
	"tgkill":  {{"pid_t", "tgid"}, {"pid_t", "pid"}, {"int", "sig"}},
	"fcntl":   {{"unsigned int", "fd"}, {"unsigned int", "cmd"}, {"unsigned long", "arg"}},
	"flock":   {{"unsigned int", "fd"}, {"unsigned int", "cmd"}},
	"truncate":  {{"const char *", "pathname"}, {"long", "length"}},
	"ftruncate": {{"unsigned int", "fd"}, {"unsigned long", "length"}},
	"getdents":   {{"unsigned int", "fd"}, {"void *", "dirent"}, {"unsigned int", "count"}},
	"getdents64": {{"unsigned int", "fd"}, {"void *", "dirent"}, {"unsigned int", "count"}},
	"getcwd":  {{"char *", "buf"}, {"unsigned long", "size"}},
	"chdir":   {{"const char *", "filename"}},
	"fchdir":  {{"unsigned int", "fd"}},
	"rename":  {{"const char *", "oldname"}, {"const char *", "newname"}},
	"renameat": {{"int", "olddfd"}, {"const char *", "oldname"}, {"int", "newdfd"}, {"const char *", "newname"}},
	"renameat2": {{"int", "olddfd"}, {"const char *", "oldname"}, {"int", "newdfd"}, {"const char *", "newname"}, {"unsigned int", "flags"}},
	"mkdir":   {{"const char *", "pathname"}, {"umode_t", "mode"}},
	"mkdirat": {{"int", "dfd"}, {"const char *", "pathname"}, {"umode_t", "mode"}},
	"rmdir":   {{"const char *", "pathname"}},
	"creat":   {{"const char *", "pathname"}, {"umode_t", "mode"}},
	"link":    {{"const char *", "oldname"}, {"const char *", "newname"}},
	"linkat":  {{"int", "olddfd"}, {"const char *", "oldname"}, {"int", "newdfd"}, {"const char *", "newname"}, {"int", "flags"}},
	"unlink":  {{"const char *", "pathname"}},
	"unlinkat": {{"int", "dfd"}, {"const char *", "pathname"}, {"int", "flag"}},
	"symlink":  {{"const char *", "oldname"}, {"const char *", "newname"}},
	"symlinkat": {{"const char *", "oldname"}, {"int", "newdfd"}, {"const char *", "newname"}},
	"readlink":  {{"const char *", "pathname"}, {"char *", "buf"}, {"int", "bufsiz"}},
	"readlinkat": {{"int", "dfd"}, {"const char *", "pathname"}, {"char *", "buf"}, {"int", "bufsiz"}},
	"chmod":   {{"const char *", "filename"}, {"umode_t", "mode"}},
	"fchmod":  {{"unsigned int", "fd"}, {"umode_t", "mode"}},
	"fchmodat": {{"int", "dfd"}, {"const char *", "filename"}, {"umode_t", "mode"}},
	"chown":   {{"const char *", "filename"}, {"uid_t", "user"}, {"gid_t", "group"}},
	"fchown":  {{"unsigned int", "fd"}, {"uid_t", "user"}, {"gid_t", "group"}},
	"lchown":  {{"const char *", "filename"}, {"uid_t", "user"}, {"gid_t", "group"}},
	"fchownat": {{"int", "dfd"}, {"const char *", "filename"}, {"uid_t", "user"}, {"gid_t", "group"}, {"int", "flag"}},
	"openat":  {{"int", "dfd"}, {"const char *", "filename"}, {"int", "flags"}, {"umode_t", "mode"}},
	"openat2": {{"int", "dfd"}, {"const char *", "filename"}, {"struct open_how *", "how"}, {"size_t", "usize"}},
	"faccessat": {{"int", "dfd"}, {"const char *", "filename"}, {"int", "mode"}},
	"faccessat2": {{"int", "dfd"}, {"const char *", "filename"}, {"int", "mode"}, {"int", "flags"}},
	"newfstatat": {{"int", "dfd"}, {"const char *", "filename"}, {"struct stat *", "statbuf"}, {"int", "flag"}},
	"statx":   {{"int", "dfd"}, {"const char *", "filename"}, {"unsigned int", "flags"}, {"unsigned int", "mask"}, {"struct statx *", "buffer"}},
	"mount":   {{"char *", "dev_name"}, {"char *", "dir_name"}, {"char *", "type"}, {"unsigned long", "flags"}, {"void *", "data"}},
	"umount2": {{"char *", "name"}, {"int", "flags"}},
	"mknod":   {{"const char *", "filename"}, {"umode_t", "mode"}, {"unsigned int", "dev"}},
	"mknodat": {{"int", "dfd"}, {"const char *", "filename"}, {"umode_t", "mode"}, {"unsigned int", "dev"}},
	"utimensat": {{"int", "dfd"}, {"const char *", "filename"}, {"struct timespec *", "utimes"}, {"int", "flags"}},
	"nanosleep": {{"struct timespec *", "rqtp"}, {"struct timespec *", "rmtp"}},
	"uname":   {{"struct old_utsname *", "name"}},
	"select":  {{"int", "n"}, {"fd_set *", "inp"}, {"fd_set *", "outp"}, {"fd_set *", "exp"}, {"struct timeval *", "tvp"}},
	"pselect6": {{"int", "n"}, {"fd_set *", "inp"}, {"fd_set *", "outp"}, {"fd_set *", "exp"}, {"struct timespec *", "tsp"}, {"void *", "sig"}},
	"poll":    {{"struct pollfd *", "ufds"}, {"unsigned int", "nfds"}, {"int", "timeout_msecs"}},
	"ppoll":   {{"struct pollfd *", "ufds"}, {"unsigned int", "nfds"}, {"struct timespec *", "tsp"}, {"const sigset_t *", "sigmask"}, {"size_t", "sigsetsize"}},
	"clock_gettime": {{"clockid_t", "which_clock"}, {"struct timespec *", "tp"}},
	"clock_nanosleep": {{"clockid_t", "which_clock"}, {"int", "flags"}, {"struct timespec *", "rqtp"}, {"struct timespec *", "rmtp"}},
	"getrandom": {{"char *", "buf"}, {"size_t", "count"}, {"unsigned int", "flags"}},
	"prctl":     {{"int", "option"}, {"unsigned long", "arg2"}, {"unsigned long", "arg3"}, {"unsigned long", "arg4"}, {"unsigned long", "arg5"}},
	"arch_prctl": {{"int", "option"}, {"unsigned long", "arg2"}},
	"futex":   {{"u32 *", "uaddr"}, {"int", "op"}, {"u32", "val"}, {"struct timespec *", "utime"}, {"u32 *", "uaddr2"}, {"u32", "val3"}},
	"sched_yield": {},
	"set_tid_address": {{"int *", "tidptr"}},
	"set_robust_list": {{"struct robust_list_head *", "head"}, {"size_t", "len"}},
	"rt_sigprocmask": {{"int", "how"}, {"sigset_t *", "nset"}, {"sigset_t *", "oset"}, {"size_t", "sigsetsize"}},
	"rt_sigreturn":   {},
	"sigaltstack":    {{"const stack_t *", "uss"}, {"stack_t *", "uoss"}},
	"setsockopt": {{"int", "fd"}, {"int", "level"}, {"int", "optname"}, {"char *", "optval"}, {"int", "optlen"}},
	"getsockopt": {{"int", "fd"}, {"int", "level"}, {"int", "optname"}, {"char *", "optval"}, {"int *", "optlen"}},
	"shutdown":   {{"int", "fd"}, {"int", "how"}},
	"socketpair": {{"int", "family"}, {"int", "type"}, {"int", "protocol"}, {"int *", "usockvec"}},
	"madvise":   {{"unsigned long", "start"}, {"size_t", "len_in"}, {"int", "behavior"}},
	"mremap":    {{"unsigned long", "addr"}, {"unsigned long", "old_len"}, {"unsigned long", "new_len"}, {"unsigned long", "flags"}, {"unsigned long", "new_addr"}},
	"mlock":     {{"unsigned long", "start"}, {"size_t", "len"}},
	"munlock":   {{"unsigned long", "start"}, {"size_t", "len"}},
	"msync":     {{"unsigned long", "start"}, {"size_t", "len"}, {"int", "flags"}},
}
