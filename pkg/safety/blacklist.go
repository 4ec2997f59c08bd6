// Package safety gates every command the menu can trigger: a fixed
// command-name deny table, a dangerous-pattern scan, path allow-listing,
// shell-argument escaping, and shell-free process execution.
package safety

import (
	"fmt"
	"strings"
)

// blacklisted is the fixed deny table of command names. Entries span
// destructive filesystem ops, user and permission management, privilege
// elevation, package managers, service control, network manipulation, disk
// tools, kernel modules, boot configuration, crypto tooling, shell
// interpreters, editors, and network fetchers.
var blacklisted = map[string]struct{}{
	// Filesystem-destructive
	"rm": {}, "rmdir": {}, "shred": {}, "wipe": {},
	// User management
	"useradd": {}, "userdel": {}, "usermod": {}, "passwd": {}, "chpasswd": {},
	// Group management
	"groupadd": {}, "groupdel": {}, "groupmod": {},
	// Permission modification
	"chmod": {}, "chown": {}, "chgrp": {},
	// Privilege elevation
	"su": {}, "sudo": {}, "doas": {}, "pkexec": {},
	// Package managers
	"apt": {}, "apt-get": {}, "dnf": {}, "yum": {}, "pacman": {},
	"zypper": {}, "emerge": {}, "flatpak": {}, "snap": {},
	// Service and system control
	"systemctl": {}, "service": {}, "init": {}, "telinit": {},
	"shutdown": {}, "reboot": {}, "poweroff": {}, "halt": {},
	// Network manipulation
	"iptables": {}, "nft": {}, "ufw": {}, "firewall-cmd": {},
	"netstat": {}, "ss": {}, "tcpdump": {}, "wireshark": {},
	// Disk manipulation
	"fdisk": {}, "parted": {}, "mkfs": {}, "dd": {}, "mount": {}, "umount": {},
	// Kernel modules
	"modprobe": {}, "insmod": {}, "rmmod": {}, "lsmod": {},
	// Boot configuration
	"grub-install": {}, "update-grub": {}, "efibootmgr": {},
	// Cryptographic tooling
	"cryptsetup": {}, "openssl": {},
	// Shell interpreters
	"sh": {}, "bash": {}, "zsh": {}, "fish": {}, "dash": {},
	"tcsh": {}, "csh": {}, "ksh": {},
	// Editors
	"vim": {}, "vi": {}, "nano": {}, "emacs": {}, "ed": {},
	// Network fetchers
	"wget": {}, "curl": {}, "aria2c": {}, "nc": {},
}

// dangerousPatterns flag shell chaining, substitution, and redirection.
// Commands run without a shell, so these would be inert at execution time;
// their presence still signals misconfiguration or an injection attempt and
// fails validation outright.
var dangerousPatterns = []string{
	"|", ">", ">>", "<", "&", ";",
	"$(", "`", "${", "&&", "||",
	`\n`, `\r`,
}

// CommandName extracts the base command name: the first whitespace field
// with any directory prefix stripped.
func CommandName(command string) string {
	trimmed := strings.TrimSpace(command)
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return ""
	}
	cmd := fields[0]
	if i := strings.LastIndexAny(cmd, `/\`); i >= 0 {
		cmd = cmd[i+1:]
	}
	return cmd
}

// IsBlacklisted reports whether the command's base name is denied.
func IsBlacklisted(command string) bool {
	_, ok := blacklisted[CommandName(command)]
	return ok
}

// HasDangerousPatterns reports whether the command string contains any
// shell metacharacter pattern from the deny list.
func HasDangerousPatterns(command string) bool {
	for _, p := range dangerousPatterns {
		if strings.Contains(command, p) {
			return true
		}
	}
	return false
}

// BlacklistInfo returns the operator-facing reason a command failed
// validation, suitable for audit logging.
func BlacklistInfo(command string) string {
	if name := CommandName(command); name != "" {
		if _, ok := blacklisted[name]; ok {
			return fmt.Sprintf("Command %q is blacklisted for security reasons.", name)
		}
	}
	if HasDangerousPatterns(command) {
		return "Command contains dangerous patterns (pipes, redirects, command substitution)."
	}
	return "Command validation failed."
}
