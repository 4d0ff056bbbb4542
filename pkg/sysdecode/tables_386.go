//go:build 386

package sysdecode

var x86Syscalls = []syscallEntry{
	{1, "exit"},
	{2, "fork"},
	{3, "read"},
	{4, "write"},
	{5, "open"},
	{6, "close"},
	{7, "waitpid"},
	{8, "creat"},
	{9, "link"},
	{10, "unlink"},
	{11, "execve"},
	{12, "chdir"},
	{13, "time"},
	{14, "mknod"},
	{15, "chmod"},
	{16, "lchown"},
	{19, "lseek"},
	{20, "getpid"},
	{21, "mount"},
	{22, "umount"},
	{23, "setuid"},
	{24, "getuid"},
	{27, "alarm"},
	{29, "pause"},
	{30, "utime"},
	{33, "access"},
	{34, "nice"},
	{36, "sync"},
	{37, "kill"},
	{38, "rename"},
	{39, "mkdir"},
	{40, "rmdir"},
	{41, "dup"},
	{42, "pipe"},
	{43, "times"},
	{45, "brk"},
	{46, "setgid"},
	{47, "getgid"},
	{49, "geteuid"},
	{50, "getegid"},
	{51, "acct"},
	{52, "umount2"},
	{54, "ioctl"},
	{55, "fcntl"},
	{57, "setpgid"},
	{60, "umask"},
	{61, "chroot"},
	{62, "ustat"},
	{63, "dup2"},
	{64, "getppid"},
	{65, "getpgrp"},
	{66, "setsid"},
	{67, "sigaction"},
	{78, "gettimeofday"},
	{79, "settimeofday"},
	{85, "readlink"},
	{90, "mmap"},
	{91, "munmap"},
	{92, "truncate"},
	{93, "ftruncate"},
	{94, "fchmod"},
	{95, "fchown"},
	{106, "stat"},
	{107, "lstat"},
	{108, "fstat"},
	{114, "wait4"},
	{120, "clone"},
	{122, "uname"},
	{125, "mprotect"},
	{140, "_llseek"},
	{141, "getdents"},
	{142, "_newselect"},
	{145, "readv"},
	{146, "writev"},
	{162, "nanosleep"},
	{163, "mremap"},
	{168, "poll"},
	{183, "getcwd"},
	{190, "vfork"},
	{192, "mmap2"},
	{195, "stat64"},
	{196, "lstat64"},
	{197, "fstat64"},
	{199, "getuid32"},
	{200, "getgid32"},
	{201, "geteuid32"},
	{202, "getegid32"},
	{219, "madvise"},
	{220, "getdents64"},
	{221, "fcntl64"},
	{224, "gettid"},
	{252, "exit_group"},
	{258, "set_tid_address"},
	{265, "clock_gettime"},
	{270, "tgkill"},
	{295, "openat"},
	{296, "mkdirat"},
	{300, "fstatat64"},
	{301, "unlinkat"},
	{302, "renameat"},
	{304, "linkat"},
	{305, "symlinkat"},
	{306, "readlinkat"},
	{307, "fchmodat"},
	{308, "faccessat"},
	{320, "utimensat"},
	{329, "eventfd2"},
	{331, "dup3"},
	{332, "pipe2"},
	{355, "process_vm_readv"},
}

var numberToName = buildNumberToName(x86Syscalls)
